package validation

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

type pagingParams struct {
	Page     int    `query:"page" validate:"omitempty,min=1"`
	PageSize int    `query:"page_size" validate:"omitempty,min=1,max=100"`
	SortBy   string `json:"sort_by" validate:"omitempty,oneof=date quantity customer_name"`
}

func (s *ValidatorTestSuite) TestStruct_Valid() {
	s.NoError(GetValidator().Struct(&pagingParams{Page: 1, PageSize: 50}))
	s.NoError(GetValidator().Struct(&pagingParams{}))
}

func (s *ValidatorTestSuite) TestFormatErrors_UsesQueryTagNames() {
	err := GetValidator().Struct(&pagingParams{Page: -1, PageSize: 500})
	s.Require().Error(err)

	details := FormatErrors(err)

	s.Len(details, 2)
	s.Contains(details[0], "page: must be at least 1")
	s.Contains(details[1], "page_size: must be at most 100")
}

func (s *ValidatorTestSuite) TestFormatErrors_OneOf() {
	err := GetValidator().Struct(&pagingParams{SortBy: "price"})
	s.Require().Error(err)

	details := FormatErrors(err)

	s.Require().Len(details, 1)
	s.Contains(details[0], "sort_by: must be one of: date quantity customer_name")
}

func (s *ValidatorTestSuite) TestGetValidator_Singleton() {
	s.Same(GetValidator(), GetValidator())
}
