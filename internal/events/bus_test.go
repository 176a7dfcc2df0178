package events

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"storefront/platform/logger"
)

func TestAuditLogRecordsCartAndOrderEvents(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter("production", &buf)
	bus := NewInMemoryBus(log)
	SubscribeAuditLog(bus, log)

	ctx := context.Background()
	line := CartLine{SessionID: "s1", ProductID: "sofa", Color: "Blue", Quantity: 2}
	if err := bus.PublishSync(ctx, CartItemInserted{BaseEvent: NewBaseEvent(), CartLine: line}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := bus.PublishSync(ctx, OrderPlaced{BaseEvent: NewBaseEvent(), OrderID: "ord-1", ProductIDs: []string{"sofa"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"msg":"cart_action"`) || !strings.Contains(out, `"kind":"insert"`) {
		t.Fatalf("expected cart_action record, got %s", out)
	}
	if !strings.Contains(out, `"order_id":"ord-1"`) {
		t.Fatalf("expected order_placed record, got %s", out)
	}
}
