package log

// Standard field names used across the service.
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldDuration  = "duration"

	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldRemoteAddr = "remote_addr"
	FieldUserAgent  = "user_agent"

	FieldOwnerID        = "owner_id"
	FieldTransactionID  = "transaction_id"
	FieldBudgetID       = "budget_id"
	FieldGoalID         = "goal_id"
	FieldNotificationID = "notification_id"
	FieldCategory       = "category"
	FieldPeriod         = "period"
	FieldAmountCents    = "amount_cents"
	FieldCount          = "count"

	FieldQueue    = "queue"
	FieldExchange = "exchange"
)

// Component names.
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentTracker  = "tracker"
	ComponentAMQP     = "amqp"
	ComponentNotifier = "notifier"
	ComponentConfig   = "config"
)
