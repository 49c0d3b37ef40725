package booking

import (
	"fastship/internal/entities"
)

func ToDomain(b *BookingDB) *entities.Booking {
	if b == nil {
		return nil
	}

	return &entities.Booking{
		ID:          b.ID,
		OfferID:     b.OfferID,
		TotalAmount: b.TotalAmount,
		Currency:    b.Currency,
		Status:      entities.BookingStatusType(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func FromDomainModify(bookingModify *entities.BookingModify) *BookingModifyDB {
	if bookingModify == nil {
		return nil
	}
	bookingDB := &BookingModifyDB{
		ID:          bookingModify.ID,
		OfferID:     bookingModify.OfferID,
		TotalAmount: bookingModify.TotalAmount,
		Currency:    bookingModify.Currency,
	}

	if bookingModify.Status != nil {
		statusType := bookingModify.Status.String()
		bookingDB.Status = &statusType
	}

	return bookingDB
}
