package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HyNS00/caffine-tracker/config"
	"github.com/HyNS00/caffine-tracker/models"
)

// GetAllBeverages : 전체 프리셋 음료 목록
func GetAllBeverages(c *gin.Context) {
	var beverages []models.PresetBeverage
	config.DB.Order("brand_name, name").Find(&beverages)
	c.JSON(http.StatusOK, beverages)
}

// SearchBeverages : 이름/브랜드 키워드 검색
func SearchBeverages(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "검색어를 입력해주세요"})
		return
	}

	var beverages []models.PresetBeverage
	pattern := "%" + keyword + "%"
	config.DB.Where("name LIKE ? OR brand_name LIKE ?", pattern, pattern).Find(&beverages)

	c.JSON(http.StatusOK, beverages)
}

// GetBeverage : 특정 프리셋 음료 조회
func GetBeverage(c *gin.Context) {
	var beverage models.PresetBeverage
	if err := config.DB.First(&beverage, c.Param("beverageId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "음료를 찾을 수 없습니다"})
		return
	}

	c.JSON(http.StatusOK, beverage)
}

// GetBeverageCategories : 카테고리 목록 (100ml당 카페인 함량 테이블)
func GetBeverageCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.BeverageCategories)
}
