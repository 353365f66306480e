package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"biketrak-api/models"
	"biketrak-api/repositories"
	"biketrak-api/storage"
	"biketrak-api/utils"
)

type MotorbikeController struct {
	bikes  repositories.MotorbikeStore
	images *storage.ImageStore
}

func NewMotorbikeController(bikes repositories.MotorbikeStore, images *storage.ImageStore) *MotorbikeController {
	return &MotorbikeController{bikes: bikes, images: images}
}

func (mc *MotorbikeController) GetMotorbikes(c *gin.Context) {
	bikes, err := mc.bikes.FindAll(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching motorbikes: %v", err)
		utils.SendServerError(c, "Error fetching motorbikes")
		return
	}
	c.JSON(http.StatusOK, bikes)
}

func (mc *MotorbikeController) GetMotorbike(c *gin.Context) {
	bike, err := mc.bikes.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "Motorbike not found")
			return
		}
		log.Printf("Error fetching motorbike: %v", err)
		utils.SendServerError(c, "Error fetching motorbike")
		return
	}
	c.JSON(http.StatusOK, bike)
}

func (mc *MotorbikeController) CreateMotorbike(c *gin.Context) {
	patch, ok := mc.parseForm(c)
	if !ok {
		return
	}

	bike := models.Motorbike{
		CC:    patch.CC,
		Price: patch.Price,
	}
	if patch.Name != nil {
		bike.Name = *patch.Name
	}
	if patch.Brand != nil {
		bike.Brand = *patch.Brand
	}
	if patch.Description != nil {
		bike.Description = *patch.Description
	}

	if file, err := c.FormFile("image"); err == nil {
		imageURL, err := mc.images.Save(file)
		if err != nil {
			log.Printf("Error storing image: %v", err)
			utils.SendServerError(c, "Error creating motorbike")
			return
		}
		bike.ImageURL = imageURL
	}

	if err := mc.bikes.Create(c.Request.Context(), &bike); err != nil {
		log.Printf("Error creating motorbike: %v", err)
		utils.SendServerError(c, "Error creating motorbike")
		return
	}

	c.JSON(http.StatusCreated, bike)
}

func (mc *MotorbikeController) UpdateMotorbike(c *gin.Context) {
	id := c.Param("id")

	bike, err := mc.bikes.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "Motorbike not found")
			return
		}
		log.Printf("Error fetching motorbike: %v", err)
		utils.SendServerError(c, "Error updating motorbike")
		return
	}

	patch, ok := mc.parseForm(c)
	if !ok {
		return
	}

	if file, err := c.FormFile("image"); err == nil {
		imageURL, err := mc.images.Save(file)
		if err != nil {
			log.Printf("Error storing image: %v", err)
			utils.SendServerError(c, "Error updating motorbike")
			return
		}
		// The record points at the new file regardless of whether the old
		// one could be removed.
		if bike.ImageURL != "" {
			if err := mc.images.Remove(bike.ImageURL); err != nil {
				log.Printf("Failed deleting old image: %v", err)
			}
		}
		patch.ImageURL = &imageURL
	}

	updated, err := mc.bikes.Update(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "Motorbike not found")
			return
		}
		log.Printf("Error updating motorbike: %v", err)
		utils.SendServerError(c, "Error updating motorbike")
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (mc *MotorbikeController) DeleteMotorbike(c *gin.Context) {
	id := c.Param("id")

	bike, err := mc.bikes.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "Motorbike not found")
			return
		}
		log.Printf("Error fetching motorbike: %v", err)
		utils.SendServerError(c, "Error deleting motorbike")
		return
	}

	if bike.ImageURL != "" {
		if err := mc.images.Remove(bike.ImageURL); err != nil {
			log.Printf("Failed deleting image: %v", err)
		}
	}

	if err := mc.bikes.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "Motorbike not found")
			return
		}
		log.Printf("Error deleting motorbike: %v", err)
		utils.SendServerError(c, "Error deleting motorbike")
		return
	}

	utils.SendSuccess(c, "Motorbike deleted", nil)
}

// parseForm reads the multipart fields into a patch. A field absent from the
// form stays nil; a blank numeric field is an explicit clear; a non-numeric
// cc or price is rejected. On failure it writes the 400 itself and returns
// ok=false.
func (mc *MotorbikeController) parseForm(c *gin.Context) (*models.MotorbikePatch, bool) {
	patch := &models.MotorbikePatch{}

	if values, ok := c.GetPostFormArray("name"); ok {
		patch.Name = &values[0]
	}
	if values, ok := c.GetPostFormArray("brand"); ok {
		patch.Brand = &values[0]
	}
	if values, ok := c.GetPostFormArray("description"); ok {
		patch.Description = &values[0]
	}

	if values, ok := c.GetPostFormArray("cc"); ok {
		if values[0] == "" {
			patch.ClearCC = true
		} else {
			cc, err := utils.ParseCC(values[0])
			if err != nil {
				utils.SendError(c, http.StatusBadRequest, err.Error())
				return nil, false
			}
			patch.CC = &cc
		}
	}

	if values, ok := c.GetPostFormArray("price"); ok {
		if values[0] == "" {
			patch.ClearPrice = true
		} else {
			price, err := utils.ParsePrice(values[0])
			if err != nil {
				utils.SendError(c, http.StatusBadRequest, err.Error())
				return nil, false
			}
			patch.Price = &price
		}
	}

	return patch, true
}
