package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/models"
)

// payView walks an approved user through the membership fee payment: the
// backend creates a gateway order, the user completes it out-of-band, and
// the confirmation is reported back for verification.
func (a *App) payView(ctx context.Context) {
	fee, err := a.api.MembershipFee(ctx)
	if err != nil {
		fmt.Println("Could not load the membership fee:", err)
		return
	}
	fmt.Printf("Membership fee: %.2f %s\n", fee.Amount, fee.Currency)

	order, err := a.api.CreateMembershipOrder(ctx)
	if err != nil {
		fmt.Println("Could not create the payment order:", err)
		return
	}
	fmt.Println("Order created:", order.OrderID)
	fmt.Println("Complete the payment with your gateway app, then enter the confirmation.")

	proof, err := a.promptPaymentProof(order.OrderID, order.Amount)
	if err != nil {
		return
	}

	receipt, err := a.api.VerifyMembershipPayment(ctx, proof)
	if err != nil {
		fmt.Println("Payment verification failed:", err)
		return
	}

	fmt.Println(receipt.Message)
	fmt.Println("Your sabhasad id:", receipt.SabhasadID)
	a.session.RefreshUser(ctx)
}

// donateView lists the donation events and optionally starts a donation,
// either towards a listed event or a general one for the community fund.
func (a *App) donateView(ctx context.Context) {
	events, err := a.api.ListEvents(ctx)
	if err != nil {
		fmt.Println("Could not load events:", err)
		return
	}
	if len(events) == 0 {
		fmt.Println("No active donation events.")
	} else {
		fmt.Println("Donation events:")
		for _, e := range events {
			fmt.Printf("  %3d  %s — %.0f of %.0f raised\n", e.ID, e.Title, e.Raised, e.Goal)
		}
	}

	donate, err := getYesNo(a.reader, "Make a donation?", os.Stdout)
	if err != nil || !donate {
		return
	}

	idRaw, err := getSimpleText(a.reader, "Event id (leave empty for a general donation)", os.Stdout)
	if err != nil {
		return
	}
	amountRaw, err := getSimpleText(a.reader, "Amount", os.Stdout)
	if err != nil {
		return
	}
	amount, err := strconv.ParseFloat(amountRaw, 64)
	if err != nil {
		fmt.Println("Amount must be a number.")
		return
	}

	if idRaw == "" {
		a.generalDonation(ctx, amount)
		return
	}
	eventID, err := strconv.Atoi(idRaw)
	if err != nil {
		fmt.Println("Event id must be a number.")
		return
	}

	order, err := a.api.Donate(ctx, eventID, amount)
	if err != nil {
		fmt.Println("Could not create the donation order:", err)
		return
	}
	fmt.Println("Order created:", order.OrderID)
	fmt.Println("Complete the payment with your gateway app, then enter the confirmation.")

	proof, err := a.promptPaymentProof(order.OrderID, amount)
	if err != nil {
		return
	}
	if err := a.api.VerifyDonation(ctx, eventID, proof); err != nil {
		fmt.Println("Donation verification failed:", err)
		return
	}
	fmt.Println("Thank you for your donation!")
}

// generalDonation runs the donation flow without an event, against the
// general-purpose payment endpoints.
func (a *App) generalDonation(ctx context.Context, amount float64) {
	order, err := a.api.CreateOrder(ctx, amount)
	if err != nil {
		fmt.Println("Could not create the donation order:", err)
		return
	}
	fmt.Println("Order created:", order.OrderID)
	fmt.Println("Complete the payment with your gateway app, then enter the confirmation.")

	proof, err := a.promptPaymentProof(order.OrderID, amount)
	if err != nil {
		return
	}
	payment, err := a.api.VerifyPayment(ctx, proof)
	if err != nil {
		fmt.Println("Donation verification failed:", err)
		return
	}
	fmt.Printf("Thank you for your donation! (%s, %s)\n", payment.TransactionID, payment.Status)
}

func (a *App) historyView(ctx context.Context) {
	payments, err := a.api.PaymentHistory(ctx)
	if err != nil {
		fmt.Println("Could not load payment history:", err)
		return
	}
	if len(payments) == 0 {
		fmt.Println("No payments recorded.")
		return
	}
	for _, p := range payments {
		fmt.Printf("  %s  %.2f  %s (%s)\n", p.CreatedAt, p.Amount, p.TransactionID, p.Status)
	}
}

func (a *App) promptPaymentProof(orderID string, amount float64) (*models.PaymentProof, error) {
	paymentID, err := getSimpleText(a.reader, "Gateway payment id", os.Stdout)
	if err != nil {
		return nil, err
	}
	signature, err := getSimpleText(a.reader, "Gateway signature", os.Stdout)
	if err != nil {
		return nil, err
	}
	return &models.PaymentProof{
		PaymentID: paymentID,
		OrderID:   orderID,
		Signature: signature,
		Amount:    amount,
	}, nil
}
