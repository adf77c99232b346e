package models

type AccountType string
type VerificationStatus string
type TicketStatus string
type TicketPriority string
type FlagStatus string
type InvoiceStatus string
type SubscriptionStatus string

const (
	AccountTypeVendor   AccountType = "VENDOR"
	AccountTypeCustomer AccountType = "CUSTOMER"
	AccountTypePlanner  AccountType = "PLANNER"
	AccountTypeAdmin    AccountType = "ADMIN"

	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusApproved VerificationStatus = "approved"
	VerificationStatusRejected VerificationStatus = "rejected"

	TicketStatusOpen    TicketStatus = "OPEN"
	TicketStatusPending TicketStatus = "PENDING"
	TicketStatusClosed  TicketStatus = "CLOSED"

	TicketPriorityLow    TicketPriority = "LOW"
	TicketPriorityMedium TicketPriority = "MEDIUM"
	TicketPriorityHigh   TicketPriority = "HIGH"

	FlagStatusPending   FlagStatus = "PENDING"
	FlagStatusResolved  FlagStatus = "RESOLVED"
	FlagStatusDismissed FlagStatus = "DISMISSED"

	InvoiceStatusPending  InvoiceStatus = "pending"
	InvoiceStatusPaid     InvoiceStatus = "paid"
	InvoiceStatusOverdue  InvoiceStatus = "overdue"
	InvoiceStatusRefunded InvoiceStatus = "refunded"

	SubscriptionFreeTrial SubscriptionStatus = "free_trial"
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// ValidAccountType reports whether t is one of the closed set of account
// types. Account type is fixed at creation; there is no transition.
func ValidAccountType(t AccountType) bool {
	switch t {
	case AccountTypeVendor, AccountTypeCustomer, AccountTypePlanner, AccountTypeAdmin:
		return true
	}
	return false
}

func ValidVerificationStatus(s VerificationStatus) bool {
	switch s {
	case VerificationStatusPending, VerificationStatusApproved, VerificationStatusRejected:
		return true
	}
	return false
}

func ValidTicketStatus(s TicketStatus) bool {
	switch s {
	case TicketStatusOpen, TicketStatusPending, TicketStatusClosed:
		return true
	}
	return false
}

func ValidFlagStatus(s FlagStatus) bool {
	switch s {
	case FlagStatusPending, FlagStatusResolved, FlagStatusDismissed:
		return true
	}
	return false
}
