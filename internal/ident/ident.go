// Package ident centralizes identifier issuance: storage row IDs, sortable
// sale codes, sequential customer connection codes, and one-time portal
// credentials.
package ident

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/oklog/ulid/v2"
	"go.uber.org/fx"
)

// SaleCodePrefix is kept from the legacy receipt numbering scheme so
// existing printed receipts stay recognizable.
const SaleCodePrefix = "TBG"

// Generator issues every identifier the application hands out.
type Generator struct {
	node *snowflake.Node

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func New(node *snowflake.Node) *Generator {
	return &Generator{
		node:    node,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// RowID returns a new storage document identifier.
func (g *Generator) RowID() snowflake.ID {
	return g.node.Generate()
}

// SaleCode returns a unique, lexicographically sortable sale business code.
func (g *Generator) SaleCode(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := ulid.MustNew(ulid.Timestamp(now), g.entropy)
	return SaleCodePrefix + id.String()
}

// NextCustomerCode returns the zero-padded connection code following the
// highest code issued so far. Codes are five digits to match the ledger
// books the distributor migrated from.
func (g *Generator) NextCustomerCode(lastCode string) string {
	last, err := strconv.Atoi(strings.TrimSpace(lastCode))
	if err != nil || last < 0 {
		last = 0
	}
	return fmt.Sprintf("%05d", last+1)
}

// PortalCredential returns a random customer-portal password. The plaintext
// is delivered once; only its hash is stored.
func (g *Generator) PortalCredential() (string, error) {
	buf := make([]byte, 10)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToLower(base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf)), nil
}

func provideNode() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}

var Module = fx.Module("ident",
	fx.Provide(provideNode),
	fx.Provide(New),
)
