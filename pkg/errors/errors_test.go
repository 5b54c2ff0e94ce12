package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"dungeongen/pkg/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "width must be at least 8",
			expected: "INVALID_ARGUMENT: width must be at least 8",
		},
		{
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "room placer is required",
			expected: "FAILED_PRECONDITION: room placer is required",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrapPlainErrorKeepsCause() {
	cause := stderrors.New("tilemap locked")

	err := errors.Wrap(cause, "failed to paint dungeon")

	s.Equal(errors.CodeInternal, err.Code)
	s.True(stderrors.Is(err, cause))
	s.Equal("INTERNAL: failed to paint dungeon: tilemap locked", err.Error())
}

func (s *ErrorsTestSuite) TestWrapCodedErrorPreservesCode() {
	inner := errors.InvalidArgument("bad width").WithMeta("field", "width")

	err := errors.Wrapf(inner, "generation %d failed", 3)

	s.True(errors.IsInvalidArgument(err))
	s.Equal("width", errors.GetMeta(err)["field"])
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "nothing happened"))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(stderrors.New("plain")))
	s.Equal(errors.CodeNotFound, errors.GetCode(errors.NotFoundf("no strategy %q", "bsp")))
	s.True(errors.IsFailedPrecondition(errors.FailedPrecondition("painter is required")))
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMin("width", 4, 8, vb)
	errors.ValidateMin("height", 10, 8, vb)
	errors.ValidateRequired("theme.floor_tile", " ", vb)
	errors.ValidateEnum("seed_mode", "sometimes", []string{"fixed", "random"}, vb)

	err := vb.Build()

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(
		"INVALID_ARGUMENT: validation failed: seed_mode: must be one of: fixed, random; "+
			"theme.floor_tile: is required; width: must be at least 8",
		err.Error(),
	)
	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Len(fields, 3)
}

func (s *ErrorsTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMin("rooms", 12, 1, vb)

	s.NoError(vb.Build())
}
