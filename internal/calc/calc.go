// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package calc implements the financial calculator widgets: pure,
// deterministic arithmetic over caller-supplied inputs. Monetary results
// are rounded to cents.
package calc

import (
	"errors"
	"math"
)

// ErrInvalidInput is returned for out-of-range calculator inputs
// (negative amounts, zero consumption, non-positive unit margin).
var ErrInvalidInput = errors.New("calc: invalid input")

// FuelCostResult is the outcome of a fuel cost estimate.
type FuelCostResult struct {
	DistanceKM float64 `json:"distance_km"`
	Liters     float64 `json:"liters"`
	TotalCost  float64 `json:"total_cost"`
	CostPerKM  float64 `json:"cost_per_km"`
}

// FuelCost estimates the fuel spend for a distance given the pump price
// and the vehicle's consumption in km per liter.
func FuelCost(distanceKM, pricePerLiter, kmPerLiter float64) (*FuelCostResult, error) {
	if distanceKM < 0 || pricePerLiter < 0 || kmPerLiter <= 0 {
		return nil, ErrInvalidInput
	}

	liters := distanceKM / kmPerLiter
	total := liters * pricePerLiter

	var perKM float64
	if distanceKM > 0 {
		perKM = total / distanceKM
	}

	return &FuelCostResult{
		DistanceKM: distanceKM,
		Liters:     round2(liters),
		TotalCost:  round2(total),
		CostPerKM:  round2(perKM),
	}, nil
}

// BreakEvenResult is the outcome of a break-even estimate.
type BreakEvenResult struct {
	Units         float64 `json:"units"`
	Revenue       float64 `json:"revenue"`
	MarginPerUnit float64 `json:"margin_per_unit"`
}

// BreakEven computes how many units (rides, deliveries) cover the fixed
// costs, given revenue and variable cost per unit. Units are rounded up:
// a partial ride doesn't pay bills.
func BreakEven(fixedCosts, revenuePerUnit, costPerUnit float64) (*BreakEvenResult, error) {
	margin := revenuePerUnit - costPerUnit
	if fixedCosts < 0 || margin <= 0 {
		return nil, ErrInvalidInput
	}

	units := math.Ceil(fixedCosts / margin)
	return &BreakEvenResult{
		Units:         units,
		Revenue:       round2(units * revenuePerUnit),
		MarginPerUnit: round2(margin),
	}, nil
}

// DailyProfitResult is the outcome of a daily profit estimate.
type DailyProfitResult struct {
	Revenue    float64 `json:"revenue"`
	Costs      float64 `json:"costs"`
	Profit     float64 `json:"profit"`
	HourlyRate float64 `json:"hourly_rate"`
}

// DailyProfit computes a driver's net result for one day and the
// resulting hourly rate. Hours may be zero, in which case no hourly rate
// is reported.
func DailyProfit(revenue, fuel, meals, maintenance, hours float64) (*DailyProfitResult, error) {
	if revenue < 0 || fuel < 0 || meals < 0 || maintenance < 0 || hours < 0 {
		return nil, ErrInvalidInput
	}

	costs := fuel + meals + maintenance
	profit := revenue - costs

	var hourly float64
	if hours > 0 {
		hourly = profit / hours
	}

	return &DailyProfitResult{
		Revenue:    round2(revenue),
		Costs:      round2(costs),
		Profit:     round2(profit),
		HourlyRate: round2(hourly),
	}, nil
}

// round2 rounds to two decimal places (cents).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
