package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"mdf_gestor/internal/repository"
)

// Sentinels used when a lookup has no match. A missing brand or line code
// must never block cataloging, the reference degrades instead.
const (
	unknownBrandCode     = "X"
	unknownThicknessCode = "X"
	unknownLineCode      = "99"
)

// thicknessCodes maps the standard board thicknesses (mm) to their
// single-digit reference segment. Immutable by construction; anything
// outside this set yields the sentinel.
var thicknessCodes = map[string]string{
	"3":  "0",
	"6":  "1",
	"9":  "2",
	"12": "3",
	"15": "4",
	"18": "5",
	"25": "6",
}

// RefCodeService derives the internal reference code stored on every
// thickness: "{brandCode}.{thicknessCode}.{lineCode}-{namePrefix}".
type RefCodeService struct {
	brandRepo repository.BrandRepository
	lineRepo  repository.LineRepository
}

func NewRefCodeService(brandRepo repository.BrandRepository, lineRepo repository.LineRepository) *RefCodeService {
	return &RefCodeService{
		brandRepo: brandRepo,
		lineRepo:  lineRepo,
	}
}

// Generate is deterministic and never fails: the two lookups are read-only
// and absent rows degrade to sentinel codes.
func (s *RefCodeService) Generate(ctx context.Context, brandName string, thicknessMm float64, lineName, boardName string) string {
	brandCode := unknownBrandCode
	if brand, err := s.brandRepo.GetByName(ctx, brandName); err == nil {
		brandCode = brand.ShortCode
	}

	thicknessCode, ok := thicknessCodes[formatThickness(thicknessMm)]
	if !ok {
		thicknessCode = unknownThicknessCode
	}

	lineCode := unknownLineCode
	if line, err := s.lineRepo.GetByName(ctx, lineName); err == nil {
		lineCode = line.ShortCode
	}

	return fmt.Sprintf("%s.%s.%s-%s", brandCode, thicknessCode, lineCode, namePrefix(boardName))
}

// namePrefix takes the first three runes of the board name, upper-cased.
// Shorter names are used as-is, no padding.
func namePrefix(name string) string {
	runes := []rune(name)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return strings.ToUpper(string(runes))
}

// formatThickness renders the millimeter value the way it is keyed in the
// lookup table: no exponent, no trailing zeros ("15", "12.5").
func formatThickness(mm float64) string {
	return strconv.FormatFloat(mm, 'f', -1, 64)
}
