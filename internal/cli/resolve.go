package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/repository"
)

// resolveDealID accepts a full UUID, a UUID prefix, or an exact deal name
// (case-insensitive) and returns the canonical ID.
func resolveDealID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("deal ID is required")
	}

	deals, err := app.Deals.List(ctx, repository.DealFilter{})
	if err != nil {
		return "", err
	}

	// 1. Exact UUID match
	for _, d := range deals {
		if d.ID == input {
			return d.ID, nil
		}
	}

	// 2. Exact name match (case-insensitive)
	for _, d := range deals {
		if strings.EqualFold(d.Name, input) {
			return d.ID, nil
		}
	}

	// 3. UUID prefix match
	var matches []string
	for _, d := range deals {
		if strings.HasPrefix(d.ID, input) {
			matches = append(matches, d.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("deal not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("deal ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveInvestorID matches a tagged investor by full ID, ID prefix, or
// exact name (case-insensitive) within one deal.
func resolveInvestorID(d *domain.Deal, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("investor is required")
	}
	for _, inv := range d.TaggedInvestors {
		if inv.ID == input || strings.EqualFold(inv.Name, input) {
			return inv.ID, nil
		}
	}
	var matches []string
	for _, inv := range d.TaggedInvestors {
		if strings.HasPrefix(inv.ID, input) {
			matches = append(matches, inv.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("investor not found on %s: %q", d.Name, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("investor ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveAttachmentID matches an attachment by full ID, ID prefix, or
// exact filename within one deal.
func resolveAttachmentID(d *domain.Deal, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("attachment is required")
	}
	for _, a := range d.Attachments {
		if a.ID == input || a.Filename == input {
			return a.ID, nil
		}
	}
	var matches []string
	for _, a := range d.Attachments {
		if strings.HasPrefix(a.ID, input) {
			matches = append(matches, a.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("attachment not found on %s: %q", d.Name, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("attachment ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveUserID accepts a full UUID, a UUID prefix, or an exact name or
// email (case-insensitive).
func resolveUserID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("user is required")
	}

	users, err := app.Directory.List(ctx)
	if err != nil {
		return "", err
	}

	for _, u := range users {
		if u.ID == input || strings.EqualFold(u.Name, input) || strings.EqualFold(u.Email, input) {
			return u.ID, nil
		}
	}

	var matches []string
	for _, u := range users {
		if strings.HasPrefix(u.ID, input) {
			matches = append(matches, u.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("user not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("user ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
