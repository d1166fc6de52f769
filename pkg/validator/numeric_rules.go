package validator

import "fmt"

// MinNum validates that value is greater than or equal to min.
func MinNum[T Numeric](field string, value, min T) Rule {
	return Rule{
		Check: func() bool { return value >= min },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %v", min),
		},
	}
}

// MaxNum validates that value is less than or equal to max.
func MaxNum[T Numeric](field string, value, max T) Rule {
	return Rule{
		Check: func() bool { return value <= max },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %v", max),
		},
	}
}

// RangeNum validates that min <= value <= max.
func RangeNum[T Numeric](field string, value, min, max T) Rule {
	return Rule{
		Check: func() bool { return value >= min && value <= max },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %v and %v", min, max),
		},
	}
}

// Less validates that value is strictly less than bound. boundField names the
// field bound comes from and is used in the message.
func Less[T Numeric](field string, value T, boundField string, bound T) Rule {
	return Rule{
		Check: func() bool { return value < bound },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be less than %s (%v), got %v", boundField, bound, value),
		},
	}
}
