package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageFailedInsertItem  = "failed to insert item"
	MessageFailedDeleteItem  = "failed to delete item"
	MessageFailedGetItem     = "failed to get item"
	MessageFailedUpdateItem  = "failed to update item"
	MessageFailedGetItems    = "failed to get items"
	MessageFailedAttachImage = "failed to attach item image"

	ErrInvalidExpirationDate = errors.New("The input does not fit the expiration date format.")
	ErrInvalidSize           = errors.New("The input does not fit the size format. (small or large)")
	ErrItemNotFound          = errors.New("item does not resolve to exactly one record")
)

type (
	InsertItemRequest struct {
		Category       string `json:"category" validate:"required"`
		SellingPrice   int    `json:"selling_price" validate:"required"`
		CostPrice      int    `json:"cost_price" validate:"required"`
		Name           string `json:"name" validate:"required"`
		Description    string `json:"description" validate:"omitempty"`
		Barcode        string `json:"barcode" validate:"required"`
		ExpirationDate string `json:"expiration_date" validate:"required"`
		Size           string `json:"size" validate:"required"`
	}

	InsertItemResponse struct {
		PhoneNumber string `json:"phone_number"`
		Name        string `json:"name"`
	}

	// UpdateItemRequest carries a partial delta: zero-valued fields are
	// treated as absent and left untouched.
	UpdateItemRequest struct {
		Category       string `json:"category" validate:"omitempty"`
		SellingPrice   int    `json:"selling_price" validate:"omitempty"`
		CostPrice      int    `json:"cost_price" validate:"omitempty"`
		Name           string `json:"name" validate:"omitempty"`
		Description    string `json:"description" validate:"omitempty"`
		Barcode        string `json:"barcode" validate:"omitempty"`
		ExpirationDate string `json:"expiration_date" validate:"omitempty"`
		Size           string `json:"size" validate:"omitempty"`
	}

	UpdateItemResponse struct {
		PhoneNumber string   `json:"phone_number"`
		ChangeValue []string `json:"change_value"`
	}

	ItemResponse struct {
		Seq            uint   `json:"seq"`
		PhoneNumber    string `json:"phone_number"`
		Category       string `json:"category"`
		SellingPrice   int    `json:"selling_price"`
		CostPrice      int    `json:"cost_price"`
		Name           string `json:"name"`
		Description    string `json:"description"`
		Barcode        string `json:"barcode"`
		ExpirationDate string `json:"expiration_date"`
		Size           string `json:"size"`
		ImageURL       string `json:"image_url,omitempty"`
	}

	AttachImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	AttachImageResponse struct {
		PhoneNumber string `json:"phone_number"`
		ImageURL    string `json:"image_url"`
	}
)
