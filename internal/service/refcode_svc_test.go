package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mdf_gestor/internal/model"
	"mdf_gestor/internal/repository"
)

func setupRefCodeTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Brand{}, &model.Line{}))
	return db
}

func newRefCodeService(t *testing.T) (*RefCodeService, *gorm.DB) {
	db := setupRefCodeTestDB(t)
	return NewRefCodeService(
		repository.NewBrandRepository(db),
		repository.NewLineRepository(db),
	), db
}

func TestGenerateWithKnownLookups(t *testing.T) {
	svc, db := newRefCodeService(t)
	require.NoError(t, db.Create(&model.Brand{Name: "Arauco", ShortCode: "M1"}).Error)
	require.NoError(t, db.Create(&model.Line{Name: "Ultra", ShortCode: "07"}).Error)

	ref := svc.Generate(context.Background(), "Arauco", 15, "Ultra", "Carvalho")
	assert.Equal(t, "M1.4.07-CAR", ref)
}

func TestGenerateIsDeterministic(t *testing.T) {
	svc, db := newRefCodeService(t)
	require.NoError(t, db.Create(&model.Brand{Name: "Duratex", ShortCode: "D2"}).Error)

	ctx := context.Background()
	first := svc.Generate(ctx, "Duratex", 18, "", "Branco TX")
	second := svc.Generate(ctx, "Duratex", 18, "", "Branco TX")
	assert.Equal(t, first, second)
}

func TestGenerateUnknownBrandUsesSentinel(t *testing.T) {
	svc, _ := newRefCodeService(t)

	ref := svc.Generate(context.Background(), "Nada", 15, "", "Carvalho")
	assert.Equal(t, "X.4.99-CAR", ref)
}

func TestGenerateUnknownThicknessUsesSentinel(t *testing.T) {
	svc, db := newRefCodeService(t)
	require.NoError(t, db.Create(&model.Brand{Name: "Arauco", ShortCode: "M1"}).Error)

	assert.Equal(t, "M1.X.99-CAR", svc.Generate(context.Background(), "Arauco", 11, "", "Carvalho"))
	assert.Equal(t, "M1.X.99-CAR", svc.Generate(context.Background(), "Arauco", 12.5, "", "Carvalho"))
}

func TestGenerateUnknownLineUsesSentinel(t *testing.T) {
	svc, db := newRefCodeService(t)
	require.NoError(t, db.Create(&model.Brand{Name: "Arauco", ShortCode: "M1"}).Error)

	ref := svc.Generate(context.Background(), "Arauco", 3, "Inexistente", "Carvalho")
	assert.Equal(t, "M1.0.99-CAR", ref)
}

func TestGenerateShortNameIsNotPadded(t *testing.T) {
	svc, _ := newRefCodeService(t)

	ref := svc.Generate(context.Background(), "", 6, "", "Gi")
	assert.Equal(t, "X.1.99-GI", ref)
}

func TestGenerateAllStandardThicknesses(t *testing.T) {
	svc, _ := newRefCodeService(t)

	expected := map[float64]string{
		3: "0", 6: "1", 9: "2", 12: "3", 15: "4", 18: "5", 25: "6",
	}
	for mm, code := range expected {
		ref := svc.Generate(context.Background(), "", mm, "", "Teste")
		assert.Equal(t, "X."+code+".99-TES", ref)
	}
}
