package platform

import (
	"encoding/json"
	"time"
)

// Statuses the backend assigns to user, transporter and admin accounts.
type AccountStatus string

const (
	AccountPending  AccountStatus = "pending"
	AccountApproved AccountStatus = "approved"
	AccountRejected AccountStatus = "rejected"
	AccountBanned   AccountStatus = "banned"
)

// AccountStatuses lists every status an admin may assign from the console.
var AccountStatuses = []AccountStatus{AccountPending, AccountApproved, AccountRejected, AccountBanned}

// ShipmentStatus is the backend lifecycle label of a shipment auction.
type ShipmentStatus string

const (
	ShipmentDraft     ShipmentStatus = "DRAFT"
	ShipmentLive      ShipmentStatus = "LIVE"
	ShipmentEnded     ShipmentStatus = "ENDED"
	ShipmentAssigned  ShipmentStatus = "ASSIGNED"
	ShipmentInTransit ShipmentStatus = "IN_TRANSIT"
	ShipmentDelivered ShipmentStatus = "DELIVERED"
	ShipmentCompleted ShipmentStatus = "COMPLETED"
	ShipmentDisputed  ShipmentStatus = "DISPUTED"
	ShipmentCancelled ShipmentStatus = "CANCELLED"
)

// EscrowStatus tracks held funds for a shipment payment.
type EscrowStatus string

const (
	EscrowNone     EscrowStatus = "NONE"
	EscrowPaidIn   EscrowStatus = "PAID_IN_ESCROW"
	EscrowPaidOut  EscrowStatus = "PAID_OUT"
	EscrowRefunded EscrowStatus = "REFUNDED"
)

// WithdrawalStatus is the review state of a cash-out request.
type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "pending"
	WithdrawalApproved  WithdrawalStatus = "approved"
	WithdrawalRejected  WithdrawalStatus = "rejected"
	WithdrawalProcessed WithdrawalStatus = "processed"
)

// WithdrawalStatuses lists the statuses an admin may assign to a request.
var WithdrawalStatuses = []WithdrawalStatus{WithdrawalPending, WithdrawalApproved, WithdrawalRejected}

// User is a shipper account as the backend returns it. The region field is an
// opaque blob whose shape varies between backend versions.
type User struct {
	ID                  string          `json:"_id"`
	FullName            string          `json:"full_name,omitempty"`
	Email               string          `json:"email"`
	PhoneNumber         string          `json:"phone_number,omitempty"`
	CompanyName         string          `json:"company_name,omitempty"`
	BusinessAddress     string          `json:"business_address,omitempty"`
	TaxNumber           string          `json:"tax_number,omitempty"`
	Status              AccountStatus   `json:"status,omitempty"`
	IsEmailVerified     bool            `json:"is_email_verified,omitempty"`
	IsPhoneVerified     bool            `json:"is_phone_verified,omitempty"`
	ProcessorCustomerID string          `json:"squareCustomerId,omitempty"`
	Balance             float64         `json:"balance,omitempty"`
	Role                string          `json:"role,omitempty"`
	PaymentMethods      []PaymentMethod `json:"paymentMethod,omitempty"`
	Region              json.RawMessage `json:"region,omitempty"`
	CreatedAt           time.Time       `json:"createdAt,omitempty"`
	UpdatedAt           time.Time       `json:"updatedAt,omitempty"`
}

// Transporter is a carrier account. The backend serves a narrower field set
// than for shippers.
type Transporter struct {
	ID              string          `json:"_id"`
	FullName        string          `json:"full_name,omitempty"`
	Email           string          `json:"email"`
	PhoneNumber     string          `json:"phone_number,omitempty"`
	CompanyName     string          `json:"company_name,omitempty"`
	BusinessAddress string          `json:"business_address,omitempty"`
	TaxNumber       string          `json:"tax_number,omitempty"`
	Status          AccountStatus   `json:"status,omitempty"`
	IsEmailVerified bool            `json:"is_email_verified,omitempty"`
	Role            string          `json:"role,omitempty"`
	Region          json.RawMessage `json:"region,omitempty"`
	CreatedAt       time.Time       `json:"createdAt,omitempty"`
	UpdatedAt       time.Time       `json:"updatedAt,omitempty"`
}

// Admin is a staff account.
type Admin struct {
	ID                  string          `json:"_id"`
	FullName            string          `json:"full_name"`
	Email               string          `json:"email"`
	PhoneNumber         string          `json:"phone_number,omitempty"`
	Status              AccountStatus   `json:"status,omitempty"`
	IsEmailVerified     bool            `json:"is_email_verified,omitempty"`
	IsPhoneVerified     bool            `json:"is_phone_verified,omitempty"`
	ProcessorCustomerID string          `json:"squareCustomerId,omitempty"`
	Balance             float64         `json:"balance,omitempty"`
	Role                string          `json:"role,omitempty"`
	PaymentMethods      []PaymentMethod `json:"paymentMethod,omitempty"`
	CreatedAt           time.Time       `json:"createdAt,omitempty"`
	UpdatedAt           time.Time       `json:"updatedAt,omitempty"`
}

// PaymentMethod is an embedded payout destination on an account or request.
type PaymentMethod struct {
	Name           string `json:"name,omitempty"`
	Type           string `json:"type,omitempty"`
	AccountNumber  string `json:"accountNumber,omitempty"`
	Email          string `json:"email,omitempty"`
	RoutingNumber  string `json:"routingNumber,omitempty"`
	BankName       string `json:"bankName,omitempty"`
	CVV            string `json:"cvv,omitempty"`
	ExpiryDate     string `json:"expiryDate,omitempty"`
	CardNumber     string `json:"cardNumber,omitempty"`
	CardHolderName string `json:"cardHolderName,omitempty"`
}

// Location is a pickup or delivery point. Coordinates are GeoJSON ordered,
// longitude before latitude.
type Location struct {
	Type        string    `json:"type,omitempty"`
	Coordinates []float64 `json:"coordinates,omitempty"`
	Note        string    `json:"note,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	Country     string    `json:"country,omitempty"`
	ZipCode     string    `json:"zipCode,omitempty"`
}

// VehicleSize is the measured cargo envelope of the vehicle.
type VehicleSize struct {
	Length float64 `json:"length,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// VehicleDetails describes the vehicle being shipped.
type VehicleDetails struct {
	Make          string      `json:"make,omitempty"`
	Model         string      `json:"model,omitempty"`
	Year          int         `json:"year,omitempty"`
	Color         string      `json:"color,omitempty"`
	Drivetrain    string      `json:"drivetrain,omitempty"`
	IsRunning     bool        `json:"isRunning,omitempty"`
	IsAccidented  bool        `json:"isAccidented,omitempty"`
	RunningNote   string      `json:"runningNote,omitempty"`
	KeysAvailable bool        `json:"keysAvailable,omitempty"`
	Weight        float64     `json:"weight,omitempty"`
	Size          VehicleSize `json:"size,omitempty"`
}

// CurrentBid is the leading auction bid, when one exists.
type CurrentBid struct {
	Amount   float64   `json:"amount"`
	Bidder   string    `json:"bidder,omitempty"`
	PlacedAt time.Time `json:"placedAt,omitempty"`
}

// PickupWindow bounds when the transporter may collect the vehicle.
type PickupWindow struct {
	Start time.Time `json:"start,omitempty"`
	End   time.Time `json:"end,omitempty"`
}

// Shipment is an auction listing as returned by the list endpoints, where
// shipper and assignee are bare identifiers.
type Shipment struct {
	ID                 string         `json:"_id"`
	Shipper            string         `json:"shipper,omitempty"`
	PickupLocation     Location       `json:"pickupLocation,omitempty"`
	DeliveryLocation   Location       `json:"deliveryLocation,omitempty"`
	Distance           float64        `json:"distance,omitempty"`
	EstimatedTime      float64        `json:"estimatedTime,omitempty"`
	VehicleDetails     VehicleDetails `json:"vehicleDetails,omitempty"`
	PickupWindow       PickupWindow   `json:"pickupWindow,omitempty"`
	DeliveryDeadline   time.Time      `json:"deliveryDeadline,omitempty"`
	Photos             []string       `json:"photos,omitempty"`
	AuctionDuration    float64        `json:"auctionDuration,omitempty"`
	InstantAcceptPrice float64        `json:"instantAcceptPrice,omitempty"`
	AuctionStartTime   time.Time      `json:"auctionStartTime,omitempty"`
	AuctionEndTime     time.Time      `json:"auctionEndTime,omitempty"`
	Status             ShipmentStatus `json:"status"`
	CurrentBid         *CurrentBid    `json:"currentBid,omitempty"`
	AssignedTo         string         `json:"assignedTo,omitempty"`
	StartedAt          time.Time      `json:"startedAt,omitempty"`
	CompletedAt        time.Time      `json:"completedAt,omitempty"`
	CreatedAt          time.Time      `json:"createdAt,omitempty"`
	UpdatedAt          time.Time      `json:"updatedAt,omitempty"`
	EscrowStatus       EscrowStatus   `json:"escrowStatus,omitempty"`
	LastPayment        string         `json:"lastPayment,omitempty"`
}

// Party is the populated account summary embedded in a shipment detail
// response in place of a bare identifier.
type Party struct {
	ID              string          `json:"_id"`
	Email           string          `json:"email"`
	PhoneNumber     string          `json:"phone_number,omitempty"`
	FullName        string          `json:"full_name,omitempty"`
	CompanyName     string          `json:"company_name,omitempty"`
	BusinessAddress string          `json:"business_address,omitempty"`
	TaxNumber       string          `json:"tax_number,omitempty"`
	Status          AccountStatus   `json:"status,omitempty"`
	IsEmailVerified bool            `json:"is_email_verified,omitempty"`
	IsPhoneVerified bool            `json:"is_phone_verified,omitempty"`
	Role            string          `json:"role,omitempty"`
	Region          json.RawMessage `json:"region,omitempty"`
	Balance         float64         `json:"balance,omitempty"`
	PaymentMethods  []PaymentMethod `json:"paymentMethod,omitempty"`
	CreatedAt       time.Time       `json:"createdAt,omitempty"`
	UpdatedAt       time.Time       `json:"updatedAt,omitempty"`
}

// DetailedShipment mirrors Shipment with shipper and assignee populated.
type DetailedShipment struct {
	ID                 string         `json:"_id"`
	Shipper            Party          `json:"shipper,omitempty"`
	AssignedTo         *Party         `json:"assignedTo,omitempty"`
	PickupLocation     Location       `json:"pickupLocation,omitempty"`
	DeliveryLocation   Location       `json:"deliveryLocation,omitempty"`
	Distance           float64        `json:"distance,omitempty"`
	EstimatedTime      float64        `json:"estimatedTime,omitempty"`
	VehicleDetails     VehicleDetails `json:"vehicleDetails,omitempty"`
	PickupWindow       PickupWindow   `json:"pickupWindow,omitempty"`
	DeliveryDeadline   time.Time      `json:"deliveryDeadline,omitempty"`
	Photos             []string       `json:"photos,omitempty"`
	AuctionDuration    float64        `json:"auctionDuration,omitempty"`
	InstantAcceptPrice float64        `json:"instantAcceptPrice,omitempty"`
	AuctionStartTime   time.Time      `json:"auctionStartTime,omitempty"`
	AuctionEndTime     time.Time      `json:"auctionEndTime,omitempty"`
	Status             ShipmentStatus `json:"status"`
	CurrentBid         *CurrentBid    `json:"currentBid,omitempty"`
	CreatedAt          time.Time      `json:"createdAt,omitempty"`
	UpdatedAt          time.Time      `json:"updatedAt,omitempty"`
	EscrowStatus       EscrowStatus   `json:"escrowStatus,omitempty"`
	LastPayment        string         `json:"lastPayment,omitempty"`
}

// ShipmentDetails is the payload of the shipment detail endpoint.
type ShipmentDetails struct {
	Shipment DetailedShipment `json:"shipment"`
	Payment  *Payment         `json:"payment,omitempty"`
}

// Payment is the escrow fee breakdown recorded when a bid is charged.
type Payment struct {
	ID                      string       `json:"_id"`
	Shipment                string       `json:"shipment,omitempty"`
	Bid                     string       `json:"bid,omitempty"`
	Shipper                 string       `json:"shipper,omitempty"`
	Transporter             string       `json:"transporter,omitempty"`
	BidAmount               float64      `json:"bidAmount,omitempty"`
	ShipperFeePercent       float64      `json:"shipperFeePercent,omitempty"`
	TransporterFeePercent   float64      `json:"transporterFeePercent,omitempty"`
	ShipperFeeAmount        float64      `json:"shipperFeeAmount,omitempty"`
	TransporterFeeAmount    float64      `json:"transporterFeeAmount,omitempty"`
	TotalChargeAmount       float64      `json:"totalChargeAmount,omitempty"`
	TransporterPayoutAmount float64      `json:"transporterPayoutAmount,omitempty"`
	SquarePaymentID         string       `json:"squarePaymentId,omitempty"`
	SquarePaymentStatus     string       `json:"squarePaymentStatus,omitempty"`
	EscrowStatus            EscrowStatus `json:"escrowStatus,omitempty"`
	PayoutStatus            string       `json:"payoutStatus,omitempty"`
	PayoutEligibleAt        time.Time    `json:"payoutEligibleAt,omitempty"`
	CapturedAt              time.Time    `json:"capturedAt,omitempty"`
	CreatedAt               time.Time    `json:"createdAt,omitempty"`
	UpdatedAt               time.Time    `json:"updatedAt,omitempty"`
}

// Requester is the populated account on a withdrawal request.
type Requester struct {
	ID              string        `json:"_id"`
	Email           string        `json:"email"`
	PhoneNumber     string        `json:"phone_number,omitempty"`
	FullName        string        `json:"full_name,omitempty"`
	CompanyName     string        `json:"company_name,omitempty"`
	BusinessAddress string        `json:"business_address,omitempty"`
	TaxNumber       string        `json:"tax_number,omitempty"`
	Status          AccountStatus `json:"status,omitempty"`
	Role            string        `json:"role,omitempty"`
	Balance         float64       `json:"balance,omitempty"`
	CreatedAt       time.Time     `json:"createdAt,omitempty"`
	UpdatedAt       time.Time     `json:"updatedAt,omitempty"`
}

// Processor identifies the admin who handled a withdrawal request.
type Processor struct {
	ID       string `json:"_id"`
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email"`
}

// WithdrawalRequest is a cash-out request awaiting or past admin review.
type WithdrawalRequest struct {
	ID              string           `json:"_id"`
	User            Requester        `json:"user"`
	Amount          float64          `json:"amount"`
	Status          WithdrawalStatus `json:"status"`
	PaymentMethod   PaymentMethod    `json:"paymentMethod,omitempty"`
	ProcessedAt     time.Time        `json:"processedAt,omitempty"`
	ProcessedBy     *Processor       `json:"processedBy,omitempty"`
	RejectionReason string           `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time        `json:"createdAt,omitempty"`
	UpdatedAt       time.Time        `json:"updatedAt,omitempty"`
}

// WithdrawalRecord is a line in a transporter's withdrawal history, where the
// user is a bare identifier.
type WithdrawalRecord struct {
	ID            string           `json:"_id"`
	User          string           `json:"user,omitempty"`
	Amount        float64          `json:"amount"`
	Status        WithdrawalStatus `json:"status"`
	PaymentMethod *PaymentMethod   `json:"paymentMethod,omitempty"`
	CreatedAt     time.Time        `json:"createdAt,omitempty"`
	UpdatedAt     time.Time        `json:"updatedAt,omitempty"`
}

// DashboardStat is the aggregate figures shown on the dashboard.
type DashboardStat struct {
	TotalUsers     int     `json:"totalUsers"`
	TotalShipments int     `json:"totalShipments"`
	TotalPayments  int     `json:"totalPayments"`
	TotalRevenue   float64 `json:"totalRevenue"`
}

// LoginResult is the payload of a successful admin login.
type LoginResult struct {
	Token  string `json:"token"`
	Role   string `json:"role,omitempty"`
	UserID string `json:"userId,omitempty"`
}
