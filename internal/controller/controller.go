// Package controller owns the two todo lists and mediates between the
// storage and view capabilities. It is the only state machine in the app.
package controller

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/idilsaglam/todoapp/internal/model"
	"github.com/idilsaglam/todoapp/internal/store"
	"github.com/idilsaglam/todoapp/internal/view"
)

// todosKey is the fixed storage key for the whole persisted blob.
const todosKey = "todos"

// Controller keeps todos partitioned into an active and a completed list.
// Every id lives in exactly one of the two; the Completed flag on each
// todo is derived from membership and re-stamped on every move.
//
// All operations run to completion synchronously in response to a single
// user gesture. Not safe for concurrent use.
type Controller struct {
	storage store.Storage
	view    view.View
	log     *zap.Logger

	active    []model.Todo
	completed []model.Todo
}

// New wires a controller to its storage and view. A nil logger is
// replaced with a no-op one.
func New(storage store.Storage, v view.View, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{storage: storage, view: v, log: log}
}

// Init loads persisted state, then registers the controller as the
// handler for the view's two gesture sources. Each binder is called
// exactly once.
func (c *Controller) Init() error {
	if err := c.Load(); err != nil {
		return err
	}
	c.view.BindAddTodo(c.AddTodo)
	c.view.BindToggleCompleted(c.ToggleCompleted)
	return nil
}

// Load reads the persisted blob and partitions it into the two lists,
// preserving relative order within each partition. An absent key leaves
// both lists empty without rendering; the view keeps its initial state.
func (c *Controller) Load() error {
	raw, ok, err := c.storage.Get(todosKey)
	if err != nil {
		return fmt.Errorf("load todos: %w", err)
	}
	if !ok {
		return nil
	}

	var flat []model.Todo
	if err := json.Unmarshal([]byte(raw), &flat); err != nil {
		return &DeserializationError{Key: todosKey, Err: err}
	}

	var active, completed []model.Todo
	for _, t := range flat {
		if t.Completed {
			completed = append(completed, t)
		} else {
			active = append(active, t)
		}
	}
	c.active, c.completed = active, completed

	c.view.DisplayTodos(c.active)
	c.view.DisplayCompleted(c.completed)
	return nil
}

// AddTodo appends a new active todo. The view has already validated the
// inputs; priority and dueDate pass through untouched.
//
// The id is the current item count plus one. It is not a durable
// counter: the count can shrink only if an external actor rewrites the
// blob, since no remove operation exists.
func (c *Controller) AddTodo(text, priority, dueDate string) {
	c.active = append(c.active, model.Todo{
		ID:       len(c.active) + len(c.completed) + 1,
		Text:     text,
		Priority: priority,
		DueDate:  dueDate,
	})
	c.view.DisplayTodos(c.active)
	c.persist()
}

// ToggleCompleted moves the todo with the given id to the other list,
// appending at the tail. The whole destination list is re-stamped, not
// just the moved item: membership is the source of truth and the flag
// only mirrors it. An unknown id is a silent no-op, with no render and
// no write.
func (c *Controller) ToggleCompleted(id int) {
	if i := indexByID(c.active, id); i >= 0 {
		moved := c.active[i]
		c.active = append(c.active[:i], c.active[i+1:]...)
		c.completed = append(c.completed, moved)
		for j := range c.completed {
			c.completed[j].Completed = true
		}
	} else if i := indexByID(c.completed, id); i >= 0 {
		moved := c.completed[i]
		c.completed = append(c.completed[:i], c.completed[i+1:]...)
		c.active = append(c.active, moved)
		for j := range c.active {
			c.active[j].Completed = false
		}
	} else {
		return
	}

	c.view.DisplayTodos(c.active)
	c.view.DisplayCompleted(c.completed)
	c.persist()
}

// Save serializes active followed by completed into one flat JSON array
// and overwrites the blob in full.
func (c *Controller) Save() error {
	flat := make([]model.Todo, 0, len(c.active)+len(c.completed))
	flat = append(flat, c.active...)
	flat = append(flat, c.completed...)

	b, err := json.MarshalIndent(flat, "", "  ")
	if err != nil {
		return &PersistenceError{Key: todosKey, Err: err}
	}
	if err := c.storage.Set(todosKey, string(b)); err != nil {
		return &PersistenceError{Key: todosKey, Err: err}
	}
	return nil
}

// persist saves and logs on failure. A failed write must not take down
// the gesture that triggered it; the in-memory lists stay usable.
func (c *Controller) persist() {
	if err := c.Save(); err != nil {
		c.log.Error("persist todos", zap.Error(err))
	}
}

func indexByID(todos []model.Todo, id int) int {
	for i, t := range todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}
