package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/models"
)

// adminView is the approvals and village-management dashboard. The router
// guarantees only administrators reach it.
func (a *App) adminView(ctx context.Context) {
	for {
		action, err := getSimpleText(a.reader,
			"Admin: [p]ending applications, [a]pprove, [r]eject, [v]illages, add-[e]vent, [q]uit", os.Stdout)
		if err != nil {
			return
		}

		switch strings.ToLower(action) {
		case "p", "pending":
			a.adminPending(ctx)
		case "a", "approve":
			a.adminDecide(ctx, true)
		case "r", "reject":
			a.adminDecide(ctx, false)
		case "v", "villages":
			a.adminVillages(ctx)
		case "e", "event":
			a.adminCreateEvent(ctx)
		case "q", "quit", "":
			return
		default:
			fmt.Println("Unknown action:", action)
		}
	}
}

func (a *App) adminPending(ctx context.Context) {
	pending, err := a.api.PendingMembers(ctx)
	if err != nil {
		fmt.Println("Could not load pending applications:", err)
		return
	}
	if len(pending) == 0 {
		fmt.Println("No applications waiting.")
		return
	}
	fmt.Println("Pending applications:")
	for _, m := range pending {
		village := ""
		if m.Village != nil {
			village = " — " + m.Village.Name
		}
		fmt.Printf("  %3d  %s <%s>%s\n", m.ID, m.FullName, m.Email, village)
	}
}

func (a *App) adminDecide(ctx context.Context, approve bool) {
	idRaw, err := getSimpleText(a.reader, "Applicant id", os.Stdout)
	if err != nil {
		return
	}
	id, err := strconv.Atoi(idRaw)
	if err != nil {
		fmt.Println("Applicant id must be a number.")
		return
	}
	comment, err := getSimpleText(a.reader, "Comment (optional)", os.Stdout)
	if err != nil {
		return
	}

	if approve {
		if _, err := a.api.ApproveMember(ctx, id, comment); err != nil {
			fmt.Println("Approval failed:", err)
			return
		}
		fmt.Println("Application approved.")
	} else {
		if err := a.api.RejectMember(ctx, id, comment); err != nil {
			fmt.Println("Rejection failed:", err)
			return
		}
		fmt.Println("Application rejected.")
	}
}

func (a *App) adminVillages(ctx context.Context) {
	if err := a.printVillages(ctx); err != nil {
		fmt.Println("Could not load villages:", err)
		return
	}

	action, err := getSimpleText(a.reader, "[a]dd, [u]pdate, [d]elete, [q]uit", os.Stdout)
	if err != nil {
		return
	}

	switch strings.ToLower(action) {
	case "a", "add":
		name, err := getSimpleText(a.reader, "Village name", os.Stdout)
		if err != nil {
			return
		}
		district, err := getSimpleText(a.reader, "District", os.Stdout)
		if err != nil {
			return
		}
		if _, err := a.api.CreateVillage(ctx, name, district); err != nil {
			fmt.Println("Could not add village:", err)
			return
		}
		fmt.Println("Village added.")
	case "u", "update":
		id, ok := a.promptVillageID()
		if !ok {
			return
		}
		name, err := getSimpleText(a.reader, "New name", os.Stdout)
		if err != nil {
			return
		}
		district, err := getSimpleText(a.reader, "New district", os.Stdout)
		if err != nil {
			return
		}
		if _, err := a.api.UpdateVillage(ctx, id, name, district); err != nil {
			fmt.Println("Could not update village:", err)
			return
		}
		fmt.Println("Village updated.")
	case "d", "delete":
		id, ok := a.promptVillageID()
		if !ok {
			return
		}
		if err := a.api.DeleteVillage(ctx, id); err != nil {
			fmt.Println("Could not delete village:", err)
			return
		}
		fmt.Println("Village deleted.")
	}
}

func (a *App) promptVillageID() (int, bool) {
	idRaw, err := getSimpleText(a.reader, "Village id", os.Stdout)
	if err != nil {
		return 0, false
	}
	id, err := strconv.Atoi(idRaw)
	if err != nil {
		fmt.Println("Village id must be a number.")
		return 0, false
	}
	return id, true
}

func (a *App) adminCreateEvent(ctx context.Context) {
	title, err := getSimpleText(a.reader, "Event title", os.Stdout)
	if err != nil {
		return
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return
	}
	goalRaw, err := getSimpleText(a.reader, "Goal amount", os.Stdout)
	if err != nil {
		return
	}
	goal, err := strconv.ParseFloat(goalRaw, 64)
	if err != nil {
		fmt.Println("Goal must be a number.")
		return
	}
	category, err := getSimpleText(a.reader, "Category", os.Stdout)
	if err != nil {
		return
	}

	event := &models.DonationEvent{
		Title:       title,
		Description: description,
		Goal:        goal,
		Category:    category,
	}
	if _, err := a.api.CreateEvent(ctx, event); err != nil {
		fmt.Println("Could not create event:", err)
		return
	}
	fmt.Println("Event published.")
}
