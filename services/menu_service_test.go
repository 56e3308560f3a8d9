package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solveighty/restaurant-mechita/entity"
	"github.com/solveighty/restaurant-mechita/repository"
)

func TestMenuCreateUniqueName(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(repository.NewMenuRepository(db))

	m := entity.Menu{MenuName: "empanada", Price: 10, Category: entity.CategorySnacks}
	require.NoError(t, svc.Create(&m))

	dup := entity.Menu{MenuName: "empanada", Price: 12, Category: entity.CategorySnacks}
	require.ErrorIs(t, svc.Create(&dup), ErrMenuExists)
}

func TestMenuPriceBound(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(repository.NewMenuRepository(db))

	m := entity.Menu{MenuName: "empanada", Price: -1}
	require.ErrorIs(t, svc.Create(&m), ErrInvalidPrice)

	ok := entity.Menu{MenuName: "gratis", Price: 0}
	require.NoError(t, svc.Create(&ok))

	bad := int64(-5)
	_, err := svc.Update(ok.ID, UpdateMenuIn{Price: &bad})
	require.ErrorIs(t, err, ErrInvalidPrice)
}

func TestMenuUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(repository.NewMenuRepository(db))

	a := entity.Menu{MenuName: "empanada", Price: 10}
	require.NoError(t, svc.Create(&a))
	b := entity.Menu{MenuName: "arepa", Price: 8}
	require.NoError(t, svc.Create(&b))

	// rename onto an existing name is a conflict
	taken := "arepa"
	_, err := svc.Update(a.ID, UpdateMenuIn{MenuName: &taken})
	require.ErrorIs(t, err, ErrMenuExists)

	newPrice := int64(15)
	newDetail := "with cheese"
	got, err := svc.Update(a.ID, UpdateMenuIn{Price: &newPrice, Detail: &newDetail})
	require.NoError(t, err)
	require.EqualValues(t, 15, got.Price)
	require.Equal(t, "with cheese", got.Detail)

	_, err = svc.Update(999, UpdateMenuIn{Price: &newPrice})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMenuGetAndDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(repository.NewMenuRepository(db))

	m := entity.Menu{MenuName: "empanada", Price: 10}
	require.NoError(t, svc.Create(&m))

	got, err := svc.Get(m.ID)
	require.NoError(t, err)
	require.Equal(t, "empanada", got.MenuName)

	require.NoError(t, svc.Delete(m.ID))
	_, err = svc.Get(m.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, svc.Delete(m.ID), ErrNotFound)
}
