package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

// AdditionalFeaturesSelection is what the customer ticked in the booking form.
// ExtraKilometersCount is in 50 km packages.
type AdditionalFeaturesSelection struct {
	SCDWSelected         bool `json:"scdwSelected"`
	SnowChainsSelected   bool `json:"snowChainsSelected"`
	ChildSeat1to4Count   int  `json:"childSeat1to4Count"`
	ChildSeat5to12Count  int  `json:"childSeat5to12Count"`
	ExtraKilometersCount int  `json:"extraKilometersCount"`
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Reservation is a day rental. Price fields are a snapshot written once at submission.
type Reservation struct {
	ID                int32                       `json:"id"`
	ReservationNumber string                      `json:"reservationNumber"`
	VehicleID         int32                       `json:"vehicleId"`
	VehicleName       string                      `json:"vehicleName"`
	Customer          Customer                    `json:"customer"`
	PickupDate        string                      `json:"pickupDate"`
	ReturnDate        string                      `json:"returnDate"`
	PickupTime        string                      `json:"pickupTime"`
	ReturnTime        string                      `json:"returnTime"`
	PickupLocation    string                      `json:"pickupLocation"`
	ReturnLocation    string                      `json:"returnLocation"`
	Features          AdditionalFeaturesSelection `json:"features"`

	Days                  int     `json:"days"`
	BasePrice             float64 `json:"basePrice"`
	BasePriceBeforeSeason float64 `json:"basePriceBeforeSeason"`
	SeasonalMultiplier    float64 `json:"seasonalMultiplier"`
	SeasonalAdjustment    float64 `json:"seasonalAdjustment"`
	DeliveryFee           float64 `json:"deliveryFee"`
	ReturnFee             float64 `json:"returnFee"`
	AdditionalCost        float64 `json:"additionalCost"`
	IsSCDWSelected        bool    `json:"isSCDWSelected"`
	ProtectionCost        float64 `json:"protectionCost"`
	DeductibleAmount      float64 `json:"deductibleAmount"`
	TotalPrice            float64 `json:"totalPrice"`

	Status    ReservationStatus `json:"status"`
	Notes     string            `json:"notes"`
	CreatedOn time.Time         `json:"createdOn"`
}

type TransferReservation struct {
	ID                int32        `json:"id"`
	ReservationNumber string       `json:"reservationNumber"`
	ClassID           int32        `json:"classId"`
	Customer          Customer     `json:"customer"`
	PickupAddress     string       `json:"pickupAddress"`
	DropoffAddress    string       `json:"dropoffAddress"`
	PickupDate        string       `json:"pickupDate"`
	PickupTime        string       `json:"pickupTime"`
	Passengers        int          `json:"passengers"`
	TransferType      TransferType `json:"transferType"`
	DistanceKm        float64      `json:"distanceKm"`

	BaseFare       float64 `json:"baseFare"`
	ExtraKm        float64 `json:"extraKm"`
	TierPricePerKm float64 `json:"tierPricePerKm"`
	DistanceCharge float64 `json:"distanceCharge"`
	TotalPrice     float64 `json:"totalPrice"`

	Status    ReservationStatus `json:"status"`
	Notes     string            `json:"notes"`
	CreatedOn time.Time         `json:"createdOn"`
}
