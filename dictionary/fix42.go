package dictionary

import "github.com/tradewire/go-fix/fix"

// FIX42 returns the built-in FIX 4.2 dictionary subset covering the session
// and order-entry fields used by this client, including the
// CancelOrdersOnDisconnect extension carried on Logon.
func FIX42() *Dictionary {
	return mustNew(fix42Spec)
}

var fix42Spec = Spec{
	Fields: map[string]int{
		"Account":                  1,
		"AvgPx":                    6,
		"BeginString":              8,
		"BodyLength":               9,
		"CheckSum":                 10,
		"ClOrdID":                  11,
		"CumQty":                   14,
		"ExecID":                   17,
		"ExecTransType":            20,
		"LastPx":                   31,
		"LastShares":               32,
		"MsgSeqNum":                34,
		"MsgType":                  35,
		"OrderID":                  37,
		"OrderQty":                 38,
		"OrdStatus":                39,
		"OrdType":                  40,
		"OrigClOrdID":              41,
		"PossDupFlag":              43,
		"Price":                    44,
		"SenderCompID":             49,
		"SendingTime":              52,
		"Side":                     54,
		"Symbol":                   55,
		"TargetCompID":             56,
		"Text":                     58,
		"TimeInForce":              59,
		"TransactTime":             60,
		"NoOrders":                 73,
		"Signature":                89,
		"SignatureLength":          93,
		"RawDataLength":            95,
		"RawData":                  96,
		"EncryptMethod":            98,
		"HeartBtInt":               108,
		"TestReqID":                112,
		"ResetSeqNumFlag":          141,
		"ExecType":                 150,
		"LeavesQty":                151,
		"RefTagID":                 371,
		"RefMsgType":               372,
		"SessionRejectReason":      373,
		"Password":                 554,
		"CancelOrdersOnDisconnect": 8013,
	},
	Header: []string{
		"BeginString",
		"BodyLength",
		"MsgType",
		"MsgSeqNum",
		"PossDupFlag",
		"SenderCompID",
		"SendingTime",
		"TargetCompID",
	},
	Trailer: []string{
		"SignatureLength",
		"Signature",
		"CheckSum",
	},
	MsgTypes: map[string]string{
		fix.MsgTypeHeartbeat:          "0",
		fix.MsgTypeTestRequest:        "1",
		fix.MsgTypeReject:             "3",
		fix.MsgTypeLogout:             "5",
		fix.MsgTypeExecutionReport:    "8",
		fix.MsgTypeOrderCancelReject:  "9",
		fix.MsgTypeLogon:              "A",
		fix.MsgTypeNewOrderSingle:     "D",
		fix.MsgTypeOrderCancelRequest: "F",
		fix.MsgTypeOrderStatusRequest: "H",
	},
}
