package bmi

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	cmPerInch = 2.54
	kgPerLb   = 0.453592
)

var ErrInvalidInput = errors.New("invalid bmi input")

type Unit string

const (
	UnitMetric   Unit = "metric"
	UnitImperial Unit = "imperial"
)

// Input carries height in cm and weight in kg for metric units, inches and
// pounds for imperial ones.
type Input struct {
	Unit   Unit    `json:"unit"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

type Result struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
}

type Category struct {
	Name  string `json:"name"`
	Range string `json:"range"`
	// Upper is the exclusive upper bound, 0 for the last category.
	Upper float64 `json:"upper,omitempty"`
}

var categories = []Category{
	{Name: "Underweight", Range: "Below 18.5", Upper: 18.5},
	{Name: "Normal weight", Range: "18.5 - 24.9", Upper: 25},
	{Name: "Overweight", Range: "25 - 29.9", Upper: 30},
	{Name: "Obese", Range: "30 and above"},
}

func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func Calculate(in Input) (Result, error) {
	unit := Unit(strings.ToLower(strings.TrimSpace(string(in.Unit))))
	if unit == "" {
		unit = UnitMetric
	}
	if in.Height <= 0 || in.Weight <= 0 {
		return Result{}, fmt.Errorf("%w: both height and weight must be positive", ErrInvalidInput)
	}

	var heightM, weightKg float64
	switch unit {
	case UnitMetric:
		heightM = in.Height / 100
		weightKg = in.Weight
	case UnitImperial:
		heightM = in.Height * cmPerInch / 100
		weightKg = in.Weight * kgPerLb
	default:
		return Result{}, fmt.Errorf("%w: unknown unit [%s]", ErrInvalidInput, in.Unit)
	}

	value := weightKg / (heightM * heightM)
	return Result{
		BMI:      math.Round(value*10) / 10,
		Category: categoryFor(value),
	}, nil
}

// categoryFor classifies the unrounded value.
func categoryFor(value float64) string {
	for _, c := range categories {
		if c.Upper == 0 || value < c.Upper {
			return c.Name
		}
	}
	return categories[len(categories)-1].Name
}
