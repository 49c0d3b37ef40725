package offer

import (
	"fastship/internal/entities"
)

func ToDomain(o *OfferDB) *entities.Offer {
	if o == nil {
		return nil
	}

	return &entities.Offer{
		ID:          o.ID,
		ShipmentID:  o.ShipmentID,
		TripID:      o.TripID,
		PriceAmount: o.PriceAmount,
		Currency:    o.Currency,
		Note:        o.Note,
		Status:      entities.OfferStatusType(o.Status),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func FromDomainModify(offerModify *entities.OfferModify) *OfferModifyDB {
	if offerModify == nil {
		return nil
	}
	offerDB := &OfferModifyDB{
		ID:          offerModify.ID,
		ShipmentID:  offerModify.ShipmentID,
		TripID:      offerModify.TripID,
		PriceAmount: offerModify.PriceAmount,
		Currency:    offerModify.Currency,
		Note:        offerModify.Note,
	}

	if offerModify.Status != nil {
		statusType := offerModify.Status.String()
		offerDB.Status = &statusType
	}

	return offerDB
}
