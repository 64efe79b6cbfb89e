package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HyNS00/caffine-tracker/config"
	"github.com/HyNS00/caffine-tracker/middleware"
	"github.com/HyNS00/caffine-tracker/models"
)

// CreateCustomBeverage : 커스텀 음료 등록
// 카페인량 생략 시 카테고리 테이블 기준으로 용량 비례 추정
func CreateCustomBeverage(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var input models.CustomBeverageCreateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, ok := models.CategoryByCode(input.Category)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "알 수 없는 카테고리입니다"})
		return
	}

	caffeineMg := category.CaffeineForVolume(input.VolumeMl)
	if input.CaffeineMg != nil {
		if *input.CaffeineMg < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "카페인량은 음수일 수 없습니다"})
			return
		}
		caffeineMg = *input.CaffeineMg
	}

	beverage := models.CustomBeverage{
		UserID:     userID,
		Name:       input.Name,
		Category:   category.Code,
		VolumeMl:   input.VolumeMl,
		CaffeineMg: caffeineMg,
	}

	if err := config.DB.Create(&beverage).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "음료 등록 실패"})
		return
	}

	c.JSON(http.StatusCreated, beverage)
}

// GetMyCustomBeverages : 내 커스텀 음료 목록
func GetMyCustomBeverages(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var beverages []models.CustomBeverage
	config.DB.Where("user_id = ?", userID).Order("name").Find(&beverages)

	c.JSON(http.StatusOK, beverages)
}

// UpdateCustomBeverage : 커스텀 음료 수정
func UpdateCustomBeverage(c *gin.Context) {
	userID := middleware.GetUserID(c)

	beverage, ok := findOwnedCustomBeverage(c, userID)
	if !ok {
		return
	}

	var input models.CustomBeverageUpdateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.CaffeineMg < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "카페인량은 음수일 수 없습니다"})
		return
	}

	beverage.Name = input.Name
	beverage.VolumeMl = input.VolumeMl
	beverage.CaffeineMg = input.CaffeineMg

	config.DB.Save(beverage)
	c.JSON(http.StatusOK, beverage)
}

// DeleteCustomBeverage : 커스텀 음료 삭제
func DeleteCustomBeverage(c *gin.Context) {
	userID := middleware.GetUserID(c)

	beverage, ok := findOwnedCustomBeverage(c, userID)
	if !ok {
		return
	}

	config.DB.Delete(beverage)
	c.Status(http.StatusNoContent)
}

// findOwnedCustomBeverage : 조회 + 소유권 검증
func findOwnedCustomBeverage(c *gin.Context, userID uint) (*models.CustomBeverage, bool) {
	var beverage models.CustomBeverage
	if err := config.DB.First(&beverage, c.Param("beverageId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "음료를 찾을 수 없습니다"})
		return nil, false
	}

	if beverage.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "본인의 음료만 수정/삭제할 수 있습니다"})
		return nil, false
	}

	return &beverage, true
}
