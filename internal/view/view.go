// Package view defines the contract between the controller and any
// rendering surface. The controller never imports a concrete view.
package view

import "github.com/idilsaglam/todoapp/internal/model"

// AddFunc receives a completed add gesture. The view validates inputs
// (non-empty text and due date after trimming) before invoking it.
type AddFunc func(text, priority, dueDate string)

// ToggleFunc receives a toggle gesture for a single todo id.
type ToggleFunc func(id int)

// View is the rendering capability injected into the controller.
//
// The two binders are called exactly once, at controller initialization.
// The two display methods replace the corresponding presentation with
// exactly the given items, in the given order; completed items are shown
// with a strikethrough-equivalent style.
type View interface {
	BindAddTodo(AddFunc)
	BindToggleCompleted(ToggleFunc)
	DisplayTodos(todos []model.Todo)
	DisplayCompleted(todos []model.Todo)
}
