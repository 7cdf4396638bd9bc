// Command walkthrough runs the documented Divide and Person scenarios and
// logs what each one produced.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/Frank-readresolve/junit-examples/internal/calculator"
	"github.com/Frank-readresolve/junit-examples/internal/models"
	"github.com/Frank-readresolve/junit-examples/pkg/logging"
)

type divideCase struct {
	a, b float64
	want float64
}

var negZero = math.Copysign(0, -1)

var divideCases = []divideCase{
	{0, 0, math.NaN()},
	{negZero, negZero, math.NaN()},
	{negZero, 0, math.NaN()},
	{0, negZero, math.NaN()},
	{1, 0, math.Inf(1)},
	{-1, 0, math.Inf(-1)},
	{math.MaxFloat64, 0, math.Inf(1)},
	{math.SmallestNonzeroFloat64, 0, math.Inf(1)},
	{math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(1)},
	{0, 1, 0},
	{0, -1, negZero},
	{negZero, 1, negZero},
	{negZero, -1, 0},
	{1, 1, 1},
	{1, -1, -1},
	{-1, 1, -1},
	{-1, -1, 1},
	{math.MaxFloat64, math.MaxFloat64, 1},
	{math.SmallestNonzeroFloat64, math.MaxFloat64, 0},
	{math.SmallestNonzeroFloat64, math.SmallestNonzeroFloat64, 1},
}

// sameFloat reports whether x and y are the same IEEE-754 value, treating
// NaN as equal to NaN and 0 as distinct from -0.
func sameFloat(x, y float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return math.IsNaN(x) && math.IsNaN(y)
	}
	return x == y && math.Signbit(x) == math.Signbit(y)
}

func runDivide(logger *slog.Logger) int {
	failed := 0
	for _, c := range divideCases {
		got := calculator.Divide(c.a, c.b)
		if !sameFloat(got, c.want) {
			failed++
			logger.Error("Divide mismatch", "a", c.a, "b", c.b, "got", got, "want", c.want)
			continue
		}
		logger.Debug("Divide ok", "a", c.a, "b", c.b, "result", got)
	}
	logger.Info("Divide scenarios done", "cases", len(divideCases), "failed", failed)
	return failed
}

func runPerson(logger *slog.Logger) error {
	_, err := models.NewPerson("", "")
	if !errors.Is(err, models.ErrInvalidArgument) {
		return fmt.Errorf("NewPerson with absent names: got %v, want %v", err, models.ErrInvalidArgument)
	}
	logger.Info("NewPerson rejected absent names", "error", err)

	p, err := models.NewPerson("super", "Snippet")
	if err != nil {
		return fmt.Errorf("NewPerson: %w", err)
	}
	logger.Info("Person created",
		"first_name", p.FirstName(),
		"last_name", p.LastName(),
		"full_name", p.FullName(),
	)

	// String upper-cases the stored first name.
	described := p.String()
	logger.Info("Person described",
		"string", described,
		"first_name", p.FirstName(),
		"full_name", p.FullName(),
	)

	if p.FirstName() != "SUPER" {
		return fmt.Errorf("first name after String: got %q, want %q", p.FirstName(), "SUPER")
	}
	if p.LastName() != "Snippet" {
		return fmt.Errorf("last name changed: got %q, want %q", p.LastName(), "Snippet")
	}
	return nil
}

func run(logger *slog.Logger) error {
	if failed := runDivide(logger); failed > 0 {
		return fmt.Errorf("%d divide scenarios failed", failed)
	}
	return runPerson(logger)
}

func main() {
	logging.Setup()

	if err := run(slog.Default()); err != nil {
		slog.Error("Walkthrough failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Walkthrough complete")
}
