package a2a

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Reply is what an executor produces for one inbound message. Data, when set,
// is attached as a data part next to Text.
type Reply struct {
	State TaskState
	Text  string
	Data  any
}

// Executor runs the agent logic for one message.
type Executor interface {
	Execute(ctx context.Context, msg Message) (Reply, error)
}

// FaultInjector may delay or fail a call before it reaches the executor.
type FaultInjector interface {
	Inject(ctx context.Context) error
}

type ServerOption func(*Server)

func WithFaults(f FaultInjector) ServerOption {
	return func(s *Server) { s.faults = f }
}

// WithTaskHook registers a callback run after every message/send task.
func WithTaskHook(fn func(Task)) ServerOption {
	return func(s *Server) { s.onTask = fn }
}

func WithLogger(l *slog.Logger) ServerOption {
	return func(s *Server) { s.logger = l }
}

// Server dispatches JSON-RPC requests for a single agent.
type Server struct {
	card   AgentCard
	exec   Executor
	tasks  *TaskStore
	faults FaultInjector
	onTask func(Task)
	logger *slog.Logger
	now    func() time.Time
}

func NewServer(card AgentCard, exec Executor, opts ...ServerOption) *Server {
	s := &Server{
		card:   card,
		exec:   exec,
		tasks:  NewTaskStore(),
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) Card() AgentCard { return s.card }

func (s *Server) Tasks() *TaskStore { return s.tasks }

// Handle decodes one JSON-RPC request body and returns the response to send.
func (s *Server) Handle(ctx context.Context, body []byte) Response {
	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		return errorResponse(nil, CodeParseError, "parse error")
	}
	if req.JSONRPC != JSONRPCVersion || req.Method == "" {
		return errorResponse(req.ID, CodeInvalidRequest, "invalid request")
	}

	switch req.Method {
	case MethodSendMessage:
		var p MessageSendParams
		if err := json.Unmarshal(req.Params, &p); err != nil || len(p.Message.Parts) == 0 {
			return errorResponse(req.ID, CodeInvalidParams, "params.message with at least one part is required")
		}
		task, err := s.send(ctx, p.Message)
		if err != nil {
			return errorResponse(req.ID, CodeInternalError, err.Error())
		}
		return resultResponse(req.ID, task)

	case MethodGetTask:
		var p TaskIDParams
		if err := json.Unmarshal(req.Params, &p); err != nil || p.ID == "" {
			return errorResponse(req.ID, CodeInvalidParams, "params.id is required")
		}
		task, err := s.tasks.Get(p.ID)
		if err != nil {
			return errorResponse(req.ID, CodeTaskNotFound, err.Error())
		}
		return resultResponse(req.ID, task)

	case MethodCancelTask:
		var p TaskIDParams
		if err := json.Unmarshal(req.Params, &p); err != nil || p.ID == "" {
			return errorResponse(req.ID, CodeInvalidParams, "params.id is required")
		}
		msg := NewMessage(RoleAgent, TextPart("Operation cancelled."))
		task, err := s.tasks.Cancel(p.ID, TaskStatus{Message: &msg, Timestamp: s.timestamp()})
		switch {
		case errors.Is(err, ErrTaskNotFound):
			return errorResponse(req.ID, CodeTaskNotFound, err.Error())
		case errors.Is(err, ErrTaskNotCancelable):
			return errorResponse(req.ID, CodeTaskNotCancelable, err.Error())
		}
		return resultResponse(req.ID, task)
	}

	return errorResponse(req.ID, CodeMethodNotFound, fmt.Sprintf("method %q not found", req.Method))
}

func (s *Server) send(ctx context.Context, in Message) (Task, error) {
	if s.faults != nil {
		if err := s.faults.Inject(ctx); err != nil {
			s.logger.Warn("agent call rejected by fault injection", "agent", s.card.Name, "error", err)
			return Task{}, err
		}
	}

	contextID := in.ContextID
	if contextID == "" {
		contextID = uuid.NewString()
	}
	task := Task{ID: uuid.NewString(), ContextID: contextID, Kind: "task"}

	reply := s.execute(ctx, in)

	out := s.replyMessage(reply)
	out.ContextID = contextID
	out.TaskID = task.ID
	task.Status = TaskStatus{State: reply.State, Message: &out, Timestamp: s.timestamp()}

	s.tasks.Put(task)
	if s.onTask != nil {
		s.onTask(task)
	}
	s.logger.Info("task finished", "agent", s.card.Name, "task_id", task.ID, "state", task.Status.State)
	return task, nil
}

func (s *Server) execute(ctx context.Context, in Message) (reply Reply) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("executor panic recovered", "agent", s.card.Name, "panic", r)
			reply = Reply{State: TaskStateFailed, Text: fmt.Sprintf("Sorry, I encountered an error: %v", r)}
		}
	}()

	reply, err := s.exec.Execute(ctx, in)
	if err != nil {
		s.logger.Error("executor failed", "agent", s.card.Name, "error", err)
		return Reply{State: TaskStateFailed, Text: fmt.Sprintf("Sorry, I encountered an error: %v", err)}
	}
	if reply.State == "" {
		reply.State = TaskStateCompleted
	}
	return reply
}

func (s *Server) replyMessage(reply Reply) Message {
	parts := []Part{TextPart(reply.Text)}
	if reply.Data != nil {
		dp, err := DataPart(reply.Data)
		if err != nil {
			s.logger.Error("dropping structured reply", "agent", s.card.Name, "error", err)
		} else {
			parts = append(parts, dp)
		}
	}
	return NewMessage(RoleAgent, parts...)
}

func (s *Server) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}
