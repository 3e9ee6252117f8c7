package a2a

import (
	"encoding/json"
	"fmt"
)

const JSONRPCVersion = "2.0"

const (
	MethodSendMessage = "message/send"
	MethodGetTask     = "tasks/get"
	MethodCancelTask  = "tasks/cancel"
)

const (
	CodeParseError        = -32700
	CodeInvalidRequest    = -32600
	CodeMethodNotFound    = -32601
	CodeInvalidParams     = -32602
	CodeInternalError     = -32603
	CodeTaskNotFound      = -32001
	CodeTaskNotCancelable = -32002
)

type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

type MessageSendParams struct {
	Message Message `json:"message"`
}

type TaskIDParams struct {
	ID string `json:"id"`
}

func errorResponse(id any, code int, msg string) Response {
	return Response{JSONRPC: JSONRPCVersion, ID: id, Error: &RPCError{Code: code, Message: msg}}
}

func resultResponse(id any, v any) Response {
	raw, err := json.Marshal(v)
	if err != nil {
		return errorResponse(id, CodeInternalError, fmt.Sprintf("encode result: %v", err))
	}
	return Response{JSONRPC: JSONRPCVersion, ID: id, Result: raw}
}
