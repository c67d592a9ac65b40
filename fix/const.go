package fix

// SOH is the single-byte field delimiter used throughout the wire format.
const SOH = "\x01"

// Well-known field names defined by the protocol dictionary.
const (
	FieldBeginString              = "BeginString"
	FieldBodyLength               = "BodyLength"
	FieldMsgType                  = "MsgType"
	FieldMsgSeqNum                = "MsgSeqNum"
	FieldSenderCompID             = "SenderCompID"
	FieldTargetCompID             = "TargetCompID"
	FieldSendingTime              = "SendingTime"
	FieldCheckSum                 = "CheckSum"
	FieldRawData                  = "RawData"
	FieldPassword                 = "Password"
	FieldEncryptMethod            = "EncryptMethod"
	FieldHeartBtInt               = "HeartBtInt"
	FieldTestReqID                = "TestReqID"
	FieldCancelOrdersOnDisconnect = "CancelOrdersOnDisconnect"
)

// Message type names understood by the session engine. The dictionary maps
// these to their single-character wire codes.
const (
	MsgTypeHeartbeat          = "Heartbeat"
	MsgTypeTestRequest        = "TestRequest"
	MsgTypeReject             = "Reject"
	MsgTypeLogout             = "Logout"
	MsgTypeExecutionReport    = "ExecutionReport"
	MsgTypeOrderCancelReject  = "OrderCancelReject"
	MsgTypeLogon              = "Logon"
	MsgTypeNewOrderSingle     = "NewOrderSingle"
	MsgTypeOrderCancelRequest = "OrderCancelRequest"
	MsgTypeOrderStatusRequest = "OrderStatusRequest"
)
