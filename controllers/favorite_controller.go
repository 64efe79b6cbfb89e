package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HyNS00/caffine-tracker/config"
	"github.com/HyNS00/caffine-tracker/middleware"
	"github.com/HyNS00/caffine-tracker/models"
)

// AddFavorite : 즐겨찾기 추가 (프리셋/커스텀, 중복 불가)
func AddFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var input models.FavoriteCreateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	favorite := models.FavoriteBeverage{
		UserID:       userID,
		DisplayOrder: nextDisplayOrder(userID),
	}

	if input.Type == models.BeverageTypePreset {
		var beverage models.PresetBeverage
		if err := config.DB.First(&beverage, input.BeverageID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "음료를 찾을 수 없습니다"})
			return
		}

		var count int64
		config.DB.Model(&models.FavoriteBeverage{}).
			Where("user_id = ? AND preset_beverage_id = ?", userID, beverage.ID).Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "이미 즐겨찾기에 추가된 음료입니다"})
			return
		}

		beverageID := beverage.ID
		favorite.PresetBeverageID = &beverageID
	} else {
		var beverage models.CustomBeverage
		if err := config.DB.First(&beverage, input.BeverageID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "음료를 찾을 수 없습니다"})
			return
		}

		if beverage.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "본인의 음료만 즐겨찾기할 수 있습니다"})
			return
		}

		var count int64
		config.DB.Model(&models.FavoriteBeverage{}).
			Where("user_id = ? AND custom_beverage_id = ?", userID, beverage.ID).Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "이미 즐겨찾기에 추가된 음료입니다"})
			return
		}

		beverageID := beverage.ID
		favorite.CustomBeverageID = &beverageID
	}

	if err := config.DB.Create(&favorite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "즐겨찾기 추가 실패"})
		return
	}

	response, ok := toFavoriteResponse(&favorite)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "즐겨찾기 조회 실패"})
		return
	}
	c.JSON(http.StatusCreated, response)
}

// GetFavorites : 즐겨찾기 목록 (표시 순서대로)
func GetFavorites(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var favorites []models.FavoriteBeverage
	config.DB.Where("user_id = ?", userID).Order("display_order").Find(&favorites)

	responses := make([]models.FavoriteBeverageResponse, 0, len(favorites))
	for i := range favorites {
		if response, ok := toFavoriteResponse(&favorites[i]); ok {
			responses = append(responses, response)
		}
	}

	c.JSON(http.StatusOK, responses)
}

// DeleteFavorite : 즐겨찾기 삭제
func DeleteFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var favorite models.FavoriteBeverage
	if err := config.DB.First(&favorite, c.Param("favoriteId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "즐겨찾기를 찾을 수 없습니다"})
		return
	}

	if favorite.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "본인의 즐겨찾기만 삭제할 수 있습니다"})
		return
	}

	config.DB.Delete(&favorite)
	c.Status(http.StatusNoContent)
}

// UpdateFavoriteOrder : 즐겨찾기 순서 변경
// 전체 ID 목록을 받아 그 순서대로 display_order를 다시 매긴다.
// 목록이 저장된 즐겨찾기 집합과 정확히 일치해야 한다.
func UpdateFavoriteOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var input models.FavoriteOrderUpdateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var favorites []models.FavoriteBeverage
	config.DB.Where("user_id = ?", userID).Find(&favorites)

	if len(input.FavoriteIDs) != len(favorites) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "즐겨찾기 목록이 일치하지 않습니다"})
		return
	}

	favoriteMap := make(map[uint]*models.FavoriteBeverage, len(favorites))
	for i := range favorites {
		favoriteMap[favorites[i].ID] = &favorites[i]
	}

	for i, id := range input.FavoriteIDs {
		favorite, found := favoriteMap[id]
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "즐겨찾기를 찾을 수 없습니다"})
			return
		}
		favorite.DisplayOrder = i + 1
		config.DB.Save(favorite)
	}

	c.JSON(http.StatusOK, gin.H{"message": "순서가 변경되었습니다"})
}

// nextDisplayOrder : 다음 표시 순서 (현재 최대값 + 1)
func nextDisplayOrder(userID uint) int {
	var maxOrder int
	config.DB.Model(&models.FavoriteBeverage{}).
		Where("user_id = ?", userID).
		Select("COALESCE(MAX(display_order), 0)").Scan(&maxOrder)
	return maxOrder + 1
}

// toFavoriteResponse : 참조하는 음료 정보를 붙여 응답 생성
func toFavoriteResponse(favorite *models.FavoriteBeverage) (models.FavoriteBeverageResponse, bool) {
	if favorite.IsPreset() {
		var beverage models.PresetBeverage
		if err := config.DB.First(&beverage, *favorite.PresetBeverageID).Error; err != nil {
			return models.FavoriteBeverageResponse{}, false
		}
		return models.FavoriteBeverageResponse{
			ID:           favorite.ID,
			Type:         models.BeverageTypePreset,
			BeverageID:   beverage.ID,
			Name:         beverage.Name,
			BrandName:    beverage.BrandName,
			Category:     beverage.Category,
			VolumeMl:     beverage.VolumeMl,
			CaffeineMg:   beverage.CaffeineMg,
			DisplayOrder: favorite.DisplayOrder,
		}, true
	}

	var beverage models.CustomBeverage
	if err := config.DB.First(&beverage, *favorite.CustomBeverageID).Error; err != nil {
		return models.FavoriteBeverageResponse{}, false
	}
	return models.FavoriteBeverageResponse{
		ID:           favorite.ID,
		Type:         models.BeverageTypeCustom,
		BeverageID:   beverage.ID,
		Name:         beverage.Name,
		Category:     beverage.Category,
		VolumeMl:     beverage.VolumeMl,
		CaffeineMg:   beverage.CaffeineMg,
		DisplayOrder: favorite.DisplayOrder,
	}, true
}
