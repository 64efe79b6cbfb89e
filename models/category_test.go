package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryByCode(t *testing.T) {
	t.Run("존재하는 코드", func(t *testing.T) {
		category, ok := CategoryByCode(CategoryAmericano)
		require.True(t, ok)
		assert.Equal(t, "아메리카노", category.DisplayName)
		assert.Equal(t, 34.0, category.CaffeineMgPer100ml)
	})

	t.Run("없는 코드", func(t *testing.T) {
		_, ok := CategoryByCode("DECAF_UNICORN")
		assert.False(t, ok)
	})
}

func TestCaffeineForVolume(t *testing.T) {
	americano, _ := CategoryByCode(CategoryAmericano)

	t.Run("용량 비례 계산", func(t *testing.T) {
		// 34mg/100ml * 355ml
		assert.InDelta(t, 120.7, americano.CaffeineForVolume(355), 0.01)
	})

	t.Run("용량 0 이하면 기본 용량 사용", func(t *testing.T) {
		assert.Equal(t, americano.CaffeineForVolume(americano.DefaultServingSizeMl), americano.CaffeineForVolume(0))
		assert.Equal(t, americano.CaffeineForVolume(americano.DefaultServingSizeMl), americano.CaffeineForVolume(-10))
	})
}

func TestHasCaffeine(t *testing.T) {
	fruitSmoothie, _ := CategoryByCode(CategoryFruitSmoothie)
	espresso, _ := CategoryByCode(CategoryEspresso)

	assert.False(t, fruitSmoothie.HasCaffeine())
	assert.True(t, espresso.HasCaffeine())
}

func TestUserSettings(t *testing.T) {
	t.Run("정상 변환", func(t *testing.T) {
		user := User{
			DailyCaffeineLimit:  400,
			CaffeineHalfLife:    5,
			BedTime:             "23:00",
			TargetSleepCaffeine: 50,
		}

		settings, err := user.Settings()
		require.NoError(t, err)
		assert.Equal(t, 23, settings.BedHour)
		assert.Equal(t, 0, settings.BedMinute)
		assert.Equal(t, 5.0, settings.HalfLifeHours)
	})

	t.Run("잘못된 취침 시각 형식", func(t *testing.T) {
		user := User{BedTime: "11pm"}
		_, err := user.Settings()
		assert.Error(t, err)
	})
}
