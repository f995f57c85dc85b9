package domain

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusAccepted  Status = "ACCEPTED"
	StatusMatched   Status = "MATCHED"
	StatusDelivered Status = "DELIVERED"
	StatusActive    Status = "ACTIVE"
)

type Point struct {
	Lat float64
	Lng float64
}

type Parcel struct {
	ID              int64
	Pickup          Point
	Destination     Point
	WeightGrams     int
	PickupDate      string
	DestinationDate string
	Deadline        string
	Description     string
	Status          Status
	CreatorID       *int64
}

type TravelPlan struct {
	ID              int64
	Origin          Point
	Destination     Point
	OriginDate      string
	DestinationDate string
	CapacityGrams   int
	Status          Status
	CreatorID       *int64
}

// ParcelRequest pairs a sender's parcel with a traveler's plan.
type ParcelRequest struct {
	MatchID  int64
	Parcel   *Parcel
	Traveler *TravelPlan
}

type ParcelMatch struct {
	ID       int64
	Parcel   *Parcel
	Traveler *TravelPlan
}

type TravelerMatch struct {
	ID     int64
	Parcel *Parcel
}

// StatusOr returns status, or def when the backend left it empty.
func StatusOr(status, def Status) Status {
	if status == "" {
		return def
	}
	return status
}

// TotalWeightGrams sums the weight of the parcels, skipping nil ones.
func TotalWeightGrams(parcels ...*Parcel) int {
	var total int
	for _, p := range parcels {
		if p != nil {
			total += p.WeightGrams
		}
	}
	return total
}
