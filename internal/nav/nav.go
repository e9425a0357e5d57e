// Package nav tracks which console screen is active and what "back" means
// from each entry point.
package nav

import "sync"

type ViewName string

const (
	ViewDashboard    ViewName = "dashboard"
	ViewProducts     ViewName = "products"
	ViewProductForm  ViewName = "product-form"
	ViewCategories   ViewName = "categories"
	ViewCategoryForm ViewName = "category-form"
	ViewSettings     ViewName = "settings"
)

// ViewState is the active screen plus the parameters it needs. ProductID
// and CategoryID are only meaningful on the form views; 0 means "create".
type ViewState struct {
	Name       ViewName `json:"name"`
	ProductID  uint     `json:"productId,omitempty"`
	CategoryID uint     `json:"categoryId,omitempty"`
}

func Dashboard() ViewState           { return ViewState{Name: ViewDashboard} }
func Products() ViewState            { return ViewState{Name: ViewProducts} }
func ProductForm(id uint) ViewState  { return ViewState{Name: ViewProductForm, ProductID: id} }
func Categories() ViewState          { return ViewState{Name: ViewCategories} }
func CategoryForm(id uint) ViewState { return ViewState{Name: ViewCategoryForm, CategoryID: id} }
func Settings() ViewState            { return ViewState{Name: ViewSettings} }

// Valid reports whether the view name belongs to the closed screen set.
func (v ViewState) Valid() bool {
	switch v.Name {
	case ViewDashboard, ViewProducts, ViewProductForm, ViewCategories, ViewCategoryForm, ViewSettings:
		return true
	}
	return false
}

// owningList resolves a form view to the list screen that owns it.
func (v ViewState) owningList() (ViewState, bool) {
	switch v.Name {
	case ViewProductForm:
		return Products(), true
	case ViewCategoryForm:
		return Categories(), true
	}
	return ViewState{}, false
}

// Navigator is the per-session view state machine. It runs for the life of
// the session, never fails, and has no terminal state.
type Navigator struct {
	mu      sync.Mutex
	current ViewState
	history []ViewState
}

// New starts on the dashboard, or on settings when the credential check
// reported not-authenticated.
func New(authenticated bool) *Navigator {
	n := &Navigator{current: Dashboard()}
	if !authenticated {
		n.current = Settings()
	}
	return n
}

func (n *Navigator) Current() ViewState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Forward pushes the current view onto history and switches to v. Used when
// drilling from a list into a form.
func (n *Navigator) Forward(v ViewState) ViewState {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.history = append(n.history, n.current)
	n.current = v
	return n.current
}

// Root switches to v and discards the whole history stack. This is the
// primary-navigation path: any in-progress drill-down is deliberately lost.
func (n *Navigator) Root(v ViewState) ViewState {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.history = n.history[:0]
	n.current = v
	return n.current
}

// Back pops the most recent history entry. With empty history it lands on
// the dashboard; that is the default case, not an error.
func (n *Navigator) Back() ViewState {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.history) == 0 {
		n.current = Dashboard()
		return n.current
	}
	n.current = n.history[len(n.history)-1]
	n.history = n.history[:len(n.history)-1]
	return n.current
}

// CloseForm resolves a form's save/back to its owning list directly,
// ignoring the history stack, so a finished or abandoned edit always lands
// on the list even when the form was reached via Root. On a non-form view
// it leaves the state alone.
func (n *Navigator) CloseForm() ViewState {
	n.mu.Lock()
	defer n.mu.Unlock()
	if list, ok := n.current.owningList(); ok {
		n.current = list
	}
	return n.current
}
