package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vsinha/reorder/pkg/application/services"
	"github.com/vsinha/reorder/pkg/domain/entities"
	domain "github.com/vsinha/reorder/pkg/domain/services"
	"github.com/vsinha/reorder/pkg/interfaces/cli/output"
	"github.com/vsinha/reorder/pkg/interfaces/cli/prompt"
)

// Menu drives the interactive stock-control session
type Menu struct {
	inventory  *services.InventoryService
	reconciler *services.StockReconciler
	prompter   *prompt.Prompter
	clock      services.Clock
}

// NewMenu creates the interactive menu
func NewMenu(
	inventory *services.InventoryService,
	reconciler *services.StockReconciler,
	prompter *prompt.Prompter,
	clock services.Clock,
) *Menu {
	return &Menu{
		inventory:  inventory,
		reconciler: reconciler,
		prompter:   prompter,
		clock:      clock,
	}
}

// Run shows the main menu until the user exits or the input ends
func (m *Menu) Run(ctx context.Context) error {
	err := m.mainMenu(ctx)
	if errors.Is(err, io.EOF) {
		m.prompter.Println("Exiting.")
		return nil
	}
	return err
}

func (m *Menu) mainMenu(ctx context.Context) error {
	for {
		m.prompter.Println("\n==== STOCK CONTROL ====")
		m.prompter.Println("1. Item control")
		m.prompter.Println("2. Check stock")
		m.prompter.Println("3. Exit")

		choice, err := prompt.Ask(m.prompter, "\nChoose an option: ", prompt.Choice(1, 3))
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = m.itemMenu(ctx)
		case 2:
			err = m.checkStock(ctx)
		case 3:
			m.prompter.Println("Exiting.")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) itemMenu(ctx context.Context) error {
	for {
		m.prompter.Println("\n--- ITEM CONTROL ---")
		m.prompter.Println("1. Add item")
		m.prompter.Println("2. Edit item")
		m.prompter.Println("3. Remove item")
		m.prompter.Println("4. Back to main menu")

		choice, err := prompt.Ask(m.prompter, "\nChoose an option: ", prompt.Choice(1, 4))
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = m.addItem(ctx)
		case 2:
			err = m.editItem(ctx)
		case 3:
			err = m.removeItem(ctx)
		case 4:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) addItem(ctx context.Context) error {
	m.prompter.Println("\n--- ADD ITEM ---")

	details, err := m.askDetails("")
	if err != nil {
		return err
	}

	result, err := m.inventory.AddItem(ctx, details)
	if errors.Is(err, domain.ErrCoverageTooLong) {
		m.prompter.Println("Item not registered: the stock would last past 31/12/9999.")
		return nil
	}
	if err != nil {
		return err
	}

	if result.OrderNow {
		m.prompter.Println("Warning: stock is below the minimum. Place an order right away.")
	} else {
		m.prompter.Printf("The next order must be placed on: %s\n", result.Item.NextOrderDate)
	}
	m.prompter.Println("Item registered successfully!")
	return nil
}

func (m *Menu) editItem(ctx context.Context) error {
	position, err := m.selectItem(ctx, "EDIT ITEM", "edit")
	if err != nil || position == 0 {
		return err
	}

	items, err := m.inventory.ListItems(ctx)
	if err != nil {
		return err
	}
	m.prompter.Printf("\nEditing item: %s\n", items[position-1].Name)

	details, err := m.askDetails("New ")
	if err != nil {
		return err
	}

	_, err = m.inventory.EditItem(ctx, position, details)
	if errors.Is(err, domain.ErrCoverageTooLong) {
		m.prompter.Println("Item not updated: the stock would last past 31/12/9999.")
		return nil
	}
	if err != nil {
		return err
	}
	m.prompter.Println("Item updated successfully.")
	return nil
}

func (m *Menu) removeItem(ctx context.Context) error {
	position, err := m.selectItem(ctx, "REMOVE ITEM", "remove")
	if err != nil || position == 0 {
		return err
	}

	removed, err := m.inventory.RemoveItem(ctx, position)
	if err != nil {
		return err
	}
	m.prompter.Printf("Item '%s' removed successfully.\n", removed.Name)
	return nil
}

// selectItem lists the items and returns the chosen 1-based position, or 0 when
// there is nothing to choose or the user goes back
func (m *Menu) selectItem(ctx context.Context, title, action string) (int, error) {
	items, err := m.inventory.ListItems(ctx)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		m.prompter.Println("No items registered.")
		return 0, nil
	}

	m.prompter.Printf("\n--- %s ---\n", title)
	for i, item := range items {
		m.prompter.Printf("%d. %s\n", i+1, item.Name)
	}
	m.prompter.Println("0. Back to item menu")

	label := fmt.Sprintf("\nChoose the number of the item to %s: ", action)
	position, err := prompt.Ask(m.prompter, label, prompt.Choice(0, len(items)))
	if err != nil {
		return 0, err
	}
	if position == 0 {
		m.prompter.Println("Returning to the item menu.")
	}
	return position, nil
}

func (m *Menu) askDetails(prefix string) (entities.ItemDetails, error) {
	var (
		details entities.ItemDetails
		err     error
	)

	if details.Name, err = prompt.Ask(m.prompter, prefix+"Item name: ", prompt.RequiredText); err != nil {
		return details, err
	}
	if details.Supplier, err = prompt.Ask(m.prompter, prefix+"Supplier: ", prompt.Text); err != nil {
		return details, err
	}
	if details.Unit, err = prompt.Ask(m.prompter, prefix+"Unit of measure (sack/kg/liter): ", prompt.Unit); err != nil {
		return details, err
	}

	label := fmt.Sprintf("%sQuantity in stock (%s): ", prefix, details.Unit)
	if details.Quantity, err = prompt.Ask(m.prompter, label, prompt.NonNegativeQuantity); err != nil {
		return details, err
	}

	label = fmt.Sprintf("%sAverage daily consumption (%s): ", prefix, details.Unit)
	if details.DailyConsumption, err = prompt.Ask(m.prompter, label, prompt.PositiveQuantity); err != nil {
		return details, err
	}

	if details.LeadTimeDays, err = prompt.Ask(m.prompter, prefix+"Lead time (days): ", prompt.PositiveInt); err != nil {
		return details, err
	}
	return details, nil
}

func (m *Menu) checkStock(ctx context.Context) error {
	report, err := m.reconciler.Reconcile(ctx, m.clock.Today())
	if err != nil {
		return err
	}
	return output.Generate(m.prompter.Out(), report, output.FormatText)
}
