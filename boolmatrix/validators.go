package boolmatrix

import "fmt"

// ValidateNotNil ensures a pointer of any type is non-nil, returning errNil
// wrapped with the validator's own tag when it is. Centralizing this one
// check generically (rather than one ValidateNotNil per nilable type) lets
// every package in the module route its own nil-receiver/nil-argument
// guards through a single helper regardless of which pointer type it holds.
// Complexity: O(1).
func ValidateNotNil[T any](v *T, errNil error) error {
	if v == nil {
		return fmt.Errorf("ValidateNotNil: %w", errNil)
	}
	return nil
}

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSameShape checks that a and b share the same dimension N.
// Stage 1 (Validate): nil-checks via ValidateNotNil.
// Stage 2 (Prepare): retrieve dims.
// Stage 3 (Execute): compare dimensions.
// Stage 4 (Finalize): return nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b *BoolMatrix) error {
	// Stage 1: Validate non-nil
	if err := ValidateNotNil(a, ErrNilMatrix); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b, ErrNilMatrix); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}

	// Stage 2: Prepare local dimension variables
	na, nb := a.Size(), b.Size() // shared dimension of a and b

	// Stage 3: Execute comparison
	if na != nb {
		return validatorErrorf(
			"ValidateSameShape",
			fmt.Errorf("%dx%d != %dx%d: %w", na, na, nb, nb, ErrDimensionMismatch),
		)
	}

	// Stage 4: OK
	return nil
}

// ValidateSquare checks that m is non-nil and its dimension matches want —
// the invariant a Store's label matrices must hold against its own shared
// dimension (the ErrInconsistentStore class).
// Stage 1 (Validate): nil-check via ValidateNotNil.
// Stage 2 (Prepare): retrieve dim.
// Stage 3 (Execute): compare against want.
// Stage 4 (Finalize): return nil or wrapped ErrInconsistentStore.
// Complexity: O(1).
func ValidateSquare(m *BoolMatrix, want int) error {
	// Stage 1: Validate non-nil
	if err := ValidateNotNil(m, ErrNilMatrix); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}

	// Stage 2: Prepare local dimension variable
	n := m.Size()

	// Stage 3: Execute comparison
	if n != want {
		return validatorErrorf(
			"ValidateSquare",
			fmt.Errorf("%dx%d, want %dx%d: %w", n, n, want, want, ErrInconsistentStore),
		)
	}

	// Stage 4: OK
	return nil
}
