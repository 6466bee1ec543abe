package entity

// Kind groups domain errors by aggregate and operation family.
type Kind string

const (
	KindPaymentCreate              Kind = "PAYMENT_CREATE"
	KindPaymentUpdate              Kind = "PAYMENT_UPDATE"
	KindTicketCreate               Kind = "TICKET_CREATE"
	KindTicketUpdate               Kind = "TICKET_UPDATE"
	KindEventAttendeeCreate        Kind = "EVENT_ATTENDEE_CREATE"
	KindEventAttendeeUpdate        Kind = "EVENT_ATTENDEE_UPDATE"
	KindGroupCreate                Kind = "GROUP_CREATE"
	KindGroupUpdate                Kind = "GROUP_UPDATE"
	KindNotificationTemplateCreate Kind = "NOTIFICATION_TEMPLATE_CREATE"
	KindNotificationTemplateUpdate Kind = "NOTIFICATION_TEMPLATE_UPDATE"
)

// Code is a machine-readable reason carried by a DomainError.
type Code string

const (
	// Payment
	CodePaymentUserRequired       Code = "PAYMENT_USER_REQUIRED"
	CodePaymentEventRequired      Code = "PAYMENT_EVENT_REQUIRED"
	CodePaymentInvalidAmount      Code = "PAYMENT_INVALID_AMOUNT"
	CodePaymentInvalidCurrency    Code = "PAYMENT_INVALID_CURRENCY"
	CodePaymentInvalidProvider    Code = "PAYMENT_INVALID_PROVIDER"
	CodePaymentInvalidMethod      Code = "PAYMENT_INVALID_METHOD"
	CodePaymentProviderIDRequired Code = "PAYMENT_PROVIDER_ID_REQUIRED"
	CodePaymentInvalidStatus      Code = "PAYMENT_INVALID_STATUS"
	CodePaymentNotPending         Code = "PAYMENT_NOT_PENDING"
	CodePaymentNotCompleted       Code = "PAYMENT_NOT_COMPLETED"

	// Ticket
	CodeTicketUserRequired     Code = "TICKET_USER_REQUIRED"
	CodeTicketEventRequired    Code = "TICKET_EVENT_REQUIRED"
	CodeTicketPaymentRequired  Code = "TICKET_PAYMENT_REQUIRED"
	CodeTicketTypeRequired     Code = "TICKET_TYPE_REQUIRED"
	CodeTicketInvalidPrice     Code = "TICKET_INVALID_PRICE"
	CodeTicketAlreadyUsed      Code = "TICKET_ALREADY_USED"
	CodeTicketNotValid         Code = "TICKET_NOT_VALID"
	CodeTicketAlreadyCancelled Code = "TICKET_ALREADY_CANCELLED"

	// Event attendee
	CodeAttendeeEventRequired     Code = "ATTENDEE_EVENT_REQUIRED"
	CodeAttendeeUserRequired      Code = "ATTENDEE_USER_REQUIRED"
	CodeAttendeeInvalidStatus     Code = "ATTENDEE_INVALID_STATUS"
	CodeAttendeeAlreadyCheckedIn  Code = "ATTENDEE_ALREADY_CHECKED_IN"
	CodeAttendeeStatusDisallowsOp Code = "ATTENDEE_STATUS_DISALLOWS_OPERATION"
	CodeAttendeeTicketAssigned    Code = "ATTENDEE_TICKET_ALREADY_ASSIGNED"
	CodeAttendeeTicketRequired    Code = "ATTENDEE_TICKET_REQUIRED"
	CodeAttendeeNotesRequired     Code = "ATTENDEE_NOTES_REQUIRED"

	// Group
	CodeGroupNameRequired       Code = "GROUP_NAME_REQUIRED"
	CodeGroupEventRequired      Code = "GROUP_EVENT_REQUIRED"
	CodeGroupCreatorRequired    Code = "GROUP_CREATOR_REQUIRED"
	CodeGroupInvalidMaxMembers  Code = "GROUP_INVALID_MAX_MEMBERS"
	CodeGroupInvalidStatus      Code = "GROUP_INVALID_STATUS"
	CodeGroupClosed             Code = "GROUP_CLOSED"
	CodeGroupInvitationCodeFail Code = "GROUP_INVITATION_CODE_FAILED"

	// Notification template
	CodeTemplateNameRequired  Code = "TEMPLATE_NAME_REQUIRED"
	CodeTemplateTitleRequired Code = "TEMPLATE_TITLE_REQUIRED"
	CodeTemplateBodyRequired  Code = "TEMPLATE_BODY_REQUIRED"
	CodeTemplateHTMLRequired  Code = "TEMPLATE_HTML_REQUIRED"
	CodeTemplateInvalidChan   Code = "TEMPLATE_INVALID_CHANNEL"
)

// DomainError is returned for every rejected construction or transition.
type DomainError struct {
	Kind    Kind
	Code    Code
	Message string
	Cause   error
}

func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is matches targets by kind and, when the target carries one, by code.
// A target with an empty Kind matches on code alone.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok || e == nil || t == nil {
		return false
	}
	if t.Kind != "" && t.Kind != e.Kind {
		return false
	}
	return t.Code == "" || t.Code == e.Code
}

// Sentinels for errors.Is by kind.
var (
	ErrPaymentCreate              = &DomainError{Kind: KindPaymentCreate}
	ErrPaymentUpdate              = &DomainError{Kind: KindPaymentUpdate}
	ErrTicketCreate               = &DomainError{Kind: KindTicketCreate}
	ErrTicketUpdate               = &DomainError{Kind: KindTicketUpdate}
	ErrEventAttendeeCreate        = &DomainError{Kind: KindEventAttendeeCreate}
	ErrEventAttendeeUpdate        = &DomainError{Kind: KindEventAttendeeUpdate}
	ErrGroupCreate                = &DomainError{Kind: KindGroupCreate}
	ErrGroupUpdate                = &DomainError{Kind: KindGroupUpdate}
	ErrNotificationTemplateCreate = &DomainError{Kind: KindNotificationTemplateCreate}
	ErrNotificationTemplateUpdate = &DomainError{Kind: KindNotificationTemplateUpdate}
)

// CodeError returns a target matching any DomainError with the given code.
func CodeError(code Code) *DomainError {
	return &DomainError{Code: code}
}

// IsCreateKind reports whether k is one of the *_CREATE kinds.
func (k Kind) IsCreateKind() bool {
	switch k {
	case KindPaymentCreate, KindTicketCreate, KindEventAttendeeCreate, KindGroupCreate, KindNotificationTemplateCreate:
		return true
	}
	return false
}

func newError(kind Kind, code Code, message string) *DomainError {
	return &DomainError{Kind: kind, Code: code, Message: message}
}

func wrapError(kind Kind, code Code, message string, cause error) *DomainError {
	return &DomainError{Kind: kind, Code: code, Message: message, Cause: cause}
}
