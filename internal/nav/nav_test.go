package nav

import "testing"

func TestInitialView(t *testing.T) {
	if got := New(true).Current(); got.Name != ViewDashboard {
		t.Fatalf("authenticated start: got %s", got.Name)
	}
	if got := New(false).Current(); got.Name != ViewSettings {
		t.Fatalf("unauthenticated start: got %s", got.Name)
	}
}

func TestForwardAndBack(t *testing.T) {
	n := New(true)
	n.Root(Products())
	n.Forward(ProductForm(42))

	cur := n.Current()
	if cur.Name != ViewProductForm || cur.ProductID != 42 {
		t.Fatalf("after forward: got %+v", cur)
	}
	if got := n.Back(); got.Name != ViewProducts {
		t.Fatalf("back: got %s", got.Name)
	}
}

func TestBackWithEmptyHistoryFallsToDashboard(t *testing.T) {
	n := New(false)
	if got := n.Back(); got.Name != ViewDashboard {
		t.Fatalf("got %s, want dashboard", got.Name)
	}
	// repeated back stays on dashboard, never errors
	if got := n.Back(); got.Name != ViewDashboard {
		t.Fatalf("second back: got %s", got.Name)
	}
}

func TestRootClearsHistory(t *testing.T) {
	n := New(true)
	n.Forward(Products())
	n.Forward(ProductForm(1))
	n.Forward(CategoryForm(2))
	n.Root(Categories())

	if got := n.Back(); got.Name != ViewDashboard {
		t.Fatalf("back after root: got %s, want dashboard", got.Name)
	}
}

func TestCloseFormResolvesToOwningList(t *testing.T) {
	n := New(true)
	// form reached via Root: history is empty but close still lands on the list
	n.Root(ProductForm(0))
	if got := n.CloseForm(); got.Name != ViewProducts {
		t.Fatalf("product form close: got %s", got.Name)
	}

	n.Root(CategoryForm(7))
	if got := n.CloseForm(); got.Name != ViewCategories {
		t.Fatalf("category form close: got %s", got.Name)
	}
}

func TestCloseFormOutsideFormIsNoop(t *testing.T) {
	n := New(true)
	n.Root(Settings())
	if got := n.CloseForm(); got.Name != ViewSettings {
		t.Fatalf("got %s, want settings", got.Name)
	}
}

func TestValid(t *testing.T) {
	if !ProductForm(1).Valid() {
		t.Fatalf("product-form should be valid")
	}
	if (ViewState{Name: "checkout"}).Valid() {
		t.Fatalf("unknown view accepted")
	}
}
