// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package enquiry

import "context"

// Repository abstracts the local enquiry archive.
type Repository interface {
	Create(ctx context.Context, enquiry *Enquiry) error
	List(ctx context.Context) ([]Enquiry, error)
	MarkDelivered(ctx context.Context, id string) error
}
