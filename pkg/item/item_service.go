package item

import (
	"Inventory-API/domain"
	"Inventory-API/entities"
	"Inventory-API/internal/utils/storage"
	"Inventory-API/pkg/hangul"
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"regexp"
)

type (
	ItemService interface {
		InsertItem(ctx context.Context, req domain.InsertItemRequest, phoneNumber string) (domain.InsertItemResponse, error)
		DeleteItem(ctx context.Context, phoneNumber string, seq uint) (string, error)
		GetItem(ctx context.Context, phoneNumber string, seq uint) (domain.ItemResponse, error)
		UpdateItem(ctx context.Context, phoneNumber string, seq uint, req domain.UpdateItemRequest) (domain.UpdateItemResponse, error)
		ListItems(ctx context.Context, phoneNumber string, page int) ([]domain.ItemResponse, error)
		SearchItems(ctx context.Context, phoneNumber string, keyword string, page int) ([]domain.ItemResponse, error)
		AttachImage(ctx context.Context, phoneNumber string, seq uint, image *multipart.FileHeader) (domain.AttachImageResponse, error)
	}

	itemService struct {
		itemRepository ItemRepository
		s3             storage.AwsS3
	}
)

var expirationDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func NewItemService(itemRepository ItemRepository, s3 storage.AwsS3) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		s3:             s3,
	}
}

// checkItemFields validates the two constrained item fields. Both are
// independently optional so the same check serves inserts and partial
// updates.
func checkItemFields(expirationDate string, size string) error {
	if expirationDate != "" && !expirationDatePattern.MatchString(expirationDate) {
		return domain.ErrInvalidExpirationDate
	}
	if size != "" && size != "small" && size != "large" {
		return domain.ErrInvalidSize
	}
	return nil
}

func (s *itemService) InsertItem(ctx context.Context, req domain.InsertItemRequest, phoneNumber string) (domain.InsertItemResponse, error) {
	if err := checkItemFields(req.ExpirationDate, req.Size); err != nil {
		return domain.InsertItemResponse{}, err
	}

	item := &entities.Item{
		PhoneNumber:    phoneNumber,
		Category:       req.Category,
		SellingPrice:   req.SellingPrice,
		CostPrice:      req.CostPrice,
		Name:           req.Name,
		Description:    req.Description,
		Barcode:        req.Barcode,
		ExpirationDate: req.ExpirationDate,
		Size:           req.Size,
		SearchInitial:  hangul.ExtractInitial(req.Name),
	}
	if err := s.itemRepository.Insert(ctx, item); err != nil {
		return domain.InsertItemResponse{}, err
	}

	return domain.InsertItemResponse{
		PhoneNumber: phoneNumber,
		Name:        req.Name,
	}, nil
}

func (s *itemService) DeleteItem(ctx context.Context, phoneNumber string, seq uint) (string, error) {
	if err := s.itemRepository.Delete(ctx, phoneNumber, seq); err != nil {
		return "", err
	}
	return "success", nil
}

func (s *itemService) GetItem(ctx context.Context, phoneNumber string, seq uint) (domain.ItemResponse, error) {
	item, err := s.itemRepository.Get(ctx, phoneNumber, seq)
	if err != nil {
		return domain.ItemResponse{}, err
	}
	return toItemResponse(item), nil
}

// UpdateItem applies only the fields present in the delta, walking a fixed
// allow-list in declaration order. A name change recomputes search_initial
// as a side effect and reports it as changed too. Field names are never
// taken from the request.
func (s *itemService) UpdateItem(ctx context.Context, phoneNumber string, seq uint, req domain.UpdateItemRequest) (domain.UpdateItemResponse, error) {
	if err := checkItemFields(req.ExpirationDate, req.Size); err != nil {
		return domain.UpdateItemResponse{}, err
	}

	updates := make(map[string]any)
	changed := make([]string, 0)
	apply := func(column string, value any) {
		updates[column] = value
		changed = append(changed, column)
	}

	if req.Category != "" {
		apply("category", req.Category)
	}
	if req.SellingPrice != 0 {
		apply("selling_price", req.SellingPrice)
	}
	if req.CostPrice != 0 {
		apply("cost_price", req.CostPrice)
	}
	if req.Name != "" {
		apply("name", req.Name)
		apply("search_initial", hangul.ExtractInitial(req.Name))
	}
	if req.Description != "" {
		apply("description", req.Description)
	}
	if req.Barcode != "" {
		apply("barcode", req.Barcode)
	}
	if req.ExpirationDate != "" {
		apply("expiration_date", req.ExpirationDate)
	}
	if req.Size != "" {
		apply("size", req.Size)
	}

	if len(updates) > 0 {
		if err := s.itemRepository.Update(ctx, phoneNumber, seq, updates); err != nil {
			return domain.UpdateItemResponse{}, err
		}
	}

	return domain.UpdateItemResponse{
		PhoneNumber: phoneNumber,
		ChangeValue: changed,
	}, nil
}

func (s *itemService) ListItems(ctx context.Context, phoneNumber string, page int) ([]domain.ItemResponse, error) {
	items, err := s.itemRepository.List(ctx, phoneNumber, page)
	if err != nil {
		return nil, err
	}
	return toItemResponses(items), nil
}

func (s *itemService) SearchItems(ctx context.Context, phoneNumber string, keyword string, page int) ([]domain.ItemResponse, error) {
	items, err := s.itemRepository.Search(ctx, phoneNumber, keyword, page)
	if err != nil {
		return nil, err
	}
	return toItemResponses(items), nil
}

func (s *itemService) AttachImage(ctx context.Context, phoneNumber string, seq uint, image *multipart.FileHeader) (domain.AttachImageResponse, error) {
	item, err := s.itemRepository.Get(ctx, phoneNumber, seq)
	if err != nil {
		return domain.AttachImageResponse{}, err
	}

	if item.ImageURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(item.ImageURL); objectKey != "" {
			// Cleanup of the replaced object is best-effort; a failure is
			// logged, never returned.
			if err := s.s3.DeleteFile(ctx, objectKey); err != nil {
				log.Printf("failed to delete replaced image %s: %v", objectKey, err)
			}
		}
	}

	fileName := fmt.Sprintf("item-%d", item.Seq)
	objectKey, err := s.s3.UploadFile(ctx, fileName, image, "items", storage.AllowImage...)
	if err != nil {
		return domain.AttachImageResponse{}, err
	}

	imageURL := s.s3.GetPublicLinkKey(objectKey)
	if err := s.itemRepository.Update(ctx, phoneNumber, seq, map[string]any{"image_url": imageURL}); err != nil {
		return domain.AttachImageResponse{}, err
	}

	return domain.AttachImageResponse{
		PhoneNumber: phoneNumber,
		ImageURL:    imageURL,
	}, nil
}

// toItemResponse deliberately leaves search_initial out: it is an index
// column, not part of the item record callers see.
func toItemResponse(item *entities.Item) domain.ItemResponse {
	return domain.ItemResponse{
		Seq:            item.Seq,
		PhoneNumber:    item.PhoneNumber,
		Category:       item.Category,
		SellingPrice:   item.SellingPrice,
		CostPrice:      item.CostPrice,
		Name:           item.Name,
		Description:    item.Description,
		Barcode:        item.Barcode,
		ExpirationDate: item.ExpirationDate,
		Size:           item.Size,
		ImageURL:       item.ImageURL,
	}
}

func toItemResponses(items []*entities.Item) []domain.ItemResponse {
	response := make([]domain.ItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toItemResponse(item))
	}
	return response
}
