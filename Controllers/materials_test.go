package Controllers

import (
	"testing"
	"time"

	"Garage/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckStock(t *testing.T) {
	db := setupTestDB(t)
	material := createMaterial(t, db, "OIL-10", 8.0, 4)

	assert.NoError(t, CheckStock(db, material.ID, 4))

	err := CheckStock(db, material.ID, 5)
	var stockErr *Models.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 4, stockErr.Available)

	assert.ErrorIs(t, CheckStock(db, 999, 1), Models.ErrNotFound)
}

func TestConsumeMaterialDecrementsAndSnapshots(t *testing.T) {
	db := setupTestDB(t)
	material := createMaterial(t, db, "FLT-10", 12.5, 6)

	consumption, err := ConsumeMaterial(db, 1, material.ID, 2, time.Now())
	require.NoError(t, err)
	assert.InDelta(t, 12.5, consumption.UnitPrice, 1e-9)
	assert.InDelta(t, 25.0, consumption.TotalCost, 1e-9)

	// Later catalog price changes must not rewrite history
	require.NoError(t, db.Model(&Models.Material{}).Where("id = ?", material.ID).Update("unit_price", 99.0).Error)

	var stored Models.MaterialConsumption
	require.NoError(t, db.First(&stored, consumption.ID).Error)
	assert.InDelta(t, 12.5, stored.UnitPrice, 1e-9)

	var refreshed Models.Material
	require.NoError(t, db.First(&refreshed, material.ID).Error)
	assert.Equal(t, 4, refreshed.StockQuantity)
}

func TestConsumeMaterialNeverGoesNegative(t *testing.T) {
	db := setupTestDB(t)
	material := createMaterial(t, db, "BLT-10", 3.0, 3)

	_, err := ConsumeMaterial(db, 1, material.ID, 4, time.Now())
	var stockErr *Models.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)

	var refreshed Models.Material
	require.NoError(t, db.First(&refreshed, material.ID).Error)
	assert.Equal(t, 3, refreshed.StockQuantity)

	// Consuming the exact remainder drains to zero, never below
	_, err = ConsumeMaterial(db, 1, material.ID, 3, time.Now())
	require.NoError(t, err)

	require.NoError(t, db.First(&refreshed, material.ID).Error)
	assert.Equal(t, 0, refreshed.StockQuantity)

	_, err = ConsumeMaterial(db, 1, material.ID, 1, time.Now())
	assert.ErrorAs(t, err, &stockErr)
}
