package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/models"
)

func (a *App) home(ctx context.Context) {
	fmt.Println("Village Samaj — community membership platform")
	user := a.session.User()
	switch {
	case user == nil && a.session.PendingRegistration(ctx) != nil:
		fmt.Println("You have an unfinished registration. Run 'apply' to complete it.")
	case user == nil:
		fmt.Println("Sign in with 'login' or create an account with 'register'.")
	case user.Status == models.StatusPending:
		fmt.Println("Your application is awaiting review.")
	case user.Status == models.StatusApproved:
		fmt.Println("Your application was approved. Run 'pay' to complete membership.")
	case user.Status == models.StatusMember:
		fmt.Printf("Welcome back, %s (%s).\n", user.DisplayName, user.SabhasadID)
	case user.Status == models.StatusRejected:
		fmt.Println("Your application was not accepted.")
		if user.AdminComment != "" {
			fmt.Println("Note from the admins:", user.AdminComment)
		}
	}
}

func (a *App) villagesView(ctx context.Context) {
	if err := a.printVillages(ctx); err != nil {
		fmt.Println("Could not load villages:", err)
	}
}

func (a *App) printVillages(ctx context.Context) error {
	villages, err := a.api.ListVillages(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Villages:")
	for _, v := range villages {
		fmt.Printf("  %3d  %s (%s)\n", v.ID, v.Name, v.District)
	}
	return nil
}

func (a *App) membersView(ctx context.Context) {
	members, err := a.api.ListMembers(ctx, nil)
	if err != nil {
		fmt.Println("Could not load members:", err)
		return
	}
	fmt.Println("Members:")
	for _, m := range members {
		village := ""
		if m.Village != nil {
			village = " — " + m.Village.Name
		}
		fmt.Printf("  %3d  %s (%s)%s\n", m.ID, m.FullName, m.SabhasadID, village)
	}
}

func (a *App) memberProfileView(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: member <id>")
		return
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Println("Member id must be a number.")
		return
	}

	member, err := a.api.GetMember(ctx, id)
	if err != nil {
		fmt.Println("Could not load member:", err)
		return
	}
	member.Decorate()

	fmt.Println(member.DisplayName)
	fmt.Println("  email:     ", member.Email)
	if member.Village != nil {
		fmt.Println("  village:   ", member.Village.Name)
	}
	if member.Profession != "" {
		fmt.Println("  profession:", member.Profession)
	}
	if member.SabhasadID != "" {
		fmt.Println("  sabhasad:  ", member.SabhasadID)
	}

	tree, err := a.api.FamilyTreeOf(ctx, member.ID)
	if err == nil && len(tree) > 0 {
		fmt.Println("  family:")
		printFamilyTree(tree, 2)
	}
}

func (a *App) familyView(ctx context.Context) {
	tree, err := a.api.FamilyTree(ctx)
	if err != nil {
		fmt.Println("Could not load family tree:", err)
		return
	}
	if len(tree) == 0 {
		fmt.Println("No family members recorded yet.")
	} else {
		printFamilyTree(tree, 0)
	}

	manage, err := getYesNo(a.reader, "Manage family members?", os.Stdout)
	if err != nil || !manage {
		return
	}
	action, err := getSimpleText(a.reader, "add/remove", os.Stdout)
	if err != nil {
		return
	}
	switch action {
	case "add":
		a.addFamilyMember(ctx)
	case "remove":
		a.removeFamilyMember(ctx)
	default:
		fmt.Println("Unknown action:", action)
	}
}

func (a *App) addFamilyMember(ctx context.Context) {
	name, err := getSimpleText(a.reader, "Name", os.Stdout)
	if err != nil || name == "" {
		return
	}
	relation, err := getSimpleText(a.reader, "Relation (Father, Mother, Spouse, Son, Daughter, ...)", os.Stdout)
	if err != nil {
		return
	}
	gender, err := getSimpleText(a.reader, "Gender (male/female)", os.Stdout)
	if err != nil {
		return
	}
	ageRaw, err := getSimpleText(a.reader, "Age (optional)", os.Stdout)
	if err != nil {
		return
	}
	profession, err := getSimpleText(a.reader, "Profession (optional)", os.Stdout)
	if err != nil {
		return
	}

	member := &models.FamilyMember{Name: name, Relation: relation, Gender: gender, Profession: profession}
	if ageRaw != "" {
		age, err := strconv.Atoi(ageRaw)
		if err != nil {
			fmt.Println("Age must be a number.")
			return
		}
		member.Age = &age
	}

	added, err := a.api.AddFamilyMember(ctx, member)
	if err != nil {
		fmt.Println("Could not add family member:", err)
		return
	}
	fmt.Printf("Added %s (%s).\n", added.Name, added.Relation)
}

func (a *App) removeFamilyMember(ctx context.Context) {
	members, err := a.api.FamilyMembers(ctx)
	if err != nil {
		fmt.Println("Could not load family members:", err)
		return
	}
	if len(members) == 0 {
		fmt.Println("No family members recorded yet.")
		return
	}
	for _, member := range members {
		fmt.Printf("  %3d  %s (%s)\n", member.ID, member.Name, member.Relation)
	}
	idRaw, err := getSimpleText(a.reader, "Member id to remove", os.Stdout)
	if err != nil {
		return
	}
	id, err := strconv.Atoi(idRaw)
	if err != nil {
		fmt.Println("Member id must be a number.")
		return
	}
	if err := a.api.DeleteFamilyMember(ctx, id); err != nil {
		fmt.Println("Could not remove family member:", err)
		return
	}
	fmt.Println("Family member removed.")
}

// printFamilyTree renders the recursive family structure as indented text.
func printFamilyTree(nodes []models.FamilyNode, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		detail := n.Relation
		if n.Profession != "" {
			detail += ", " + n.Profession
		}
		fmt.Printf("%s- %s (%s)\n", indent, n.Name, detail)
		printFamilyTree(n.Children, depth+1)
	}
}

func (a *App) profileView(ctx context.Context) {
	user := a.session.User()
	if user == nil {
		return
	}
	fmt.Println(user.DisplayName)
	fmt.Println("  email:  ", user.Email)
	fmt.Println("  phone:  ", user.PhoneNumber)
	fmt.Println("  status: ", user.Status)
	if user.Village != nil {
		fmt.Println("  village:", user.Village.Name)
	}
	if user.SabhasadID != "" {
		fmt.Println("  sabhasad:", user.SabhasadID)
	}
	fmt.Println("  avatar: ", user.Avatar)
}

func (a *App) dashboardView(ctx context.Context) {
	stats, err := a.api.Stats(ctx)
	if err != nil {
		fmt.Println("Could not load stats:", err)
		return
	}
	fmt.Printf("Community dashboard: %d payments, %.2f raised\n", stats.Count, stats.TotalRaised)

	events, err := a.api.ListEvents(ctx)
	if err != nil {
		return
	}
	for _, e := range events {
		fmt.Printf("  %s: %.0f / %.0f\n", e.Title, e.Raised, e.Goal)
	}
}
