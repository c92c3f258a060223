// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"gigfin/internal/calc"
)

// Calculators groups the financial calculator endpoints. They are pure
// computations with no storage dependencies.
type Calculators struct{}

// NewCalculators creates a new Calculators handler group.
func NewCalculators() *Calculators {
	return &Calculators{}
}

// List returns the calculator tool catalog.
//
// GET /calculators
func (c *Calculators) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=86400")
	writeJSON(w, http.StatusOK, map[string]any{
		"tools": calc.Tools,
	})
}

// floatParam parses a required float query parameter.
func floatParam(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, errors.New("missing parameter: " + name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.New("invalid parameter: " + name)
	}
	return v, nil
}

// FuelCost computes the fuel cost of a trip.
//
// GET /calculators/fuel-cost?distance_km=120&price_per_liter=5.89&km_per_liter=12
func (c *Calculators) FuelCost(w http.ResponseWriter, r *http.Request) {
	distance, err := floatParam(r, "distance_km")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	price, err := floatParam(r, "price_per_liter")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	kmPerLiter, err := floatParam(r, "km_per_liter")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := calc.FuelCost(distance, price, kmPerLiter)
	if err != nil {
		writeError(w, http.StatusBadRequest, "inputs must be positive numbers")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// BreakEven computes how many deliveries or rides cover fixed costs.
//
// GET /calculators/break-even?fixed_costs=1000&revenue_per_unit=25&cost_per_unit=10
func (c *Calculators) BreakEven(w http.ResponseWriter, r *http.Request) {
	fixed, err := floatParam(r, "fixed_costs")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	revenue, err := floatParam(r, "revenue_per_unit")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	cost, err := floatParam(r, "cost_per_unit")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := calc.BreakEven(fixed, revenue, cost)
	if err != nil {
		writeError(w, http.StatusBadRequest, "revenue per unit must exceed cost per unit")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// DailyProfit computes a gig worker's profit for one day of work.
//
// GET /calculators/daily-profit?revenue=380&fuel=75.50&meals=30&maintenance=20&hours=10
func (c *Calculators) DailyProfit(w http.ResponseWriter, r *http.Request) {
	revenue, err := floatParam(r, "revenue")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	fuel, err := floatParam(r, "fuel")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	meals, err := floatParam(r, "meals")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	maintenance, err := floatParam(r, "maintenance")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	hours, err := floatParam(r, "hours")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := calc.DailyProfit(revenue, fuel, meals, maintenance, hours)
	if err != nil {
		writeError(w, http.StatusBadRequest, "revenue and hours must be positive")
		return
	}
	writeJSON(w, http.StatusOK, result)
}
