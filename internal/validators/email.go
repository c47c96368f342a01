package validators

import (
	"context"
	"net"
	"net/mail"
	"strings"
	"time"
)

// lookupTimeout bounds the DNS round trip made during registration.
const lookupTimeout = 3 * time.Second

// IsEmailDomainValid reports whether email parses as an address and its
// domain resolves to an MX record or, failing that, to any host address.
func IsEmailDomainValid(email string) bool {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return false
	}

	at := strings.LastIndex(addr.Address, "@")
	if at < 0 || at == len(addr.Address)-1 {
		return false
	}
	host := strings.ToLower(addr.Address[at+1:])

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	var r net.Resolver
	if mx, err := r.LookupMX(ctx, host); err == nil && len(mx) > 0 {
		return true
	}
	ips, err := r.LookupIPAddr(ctx, host)
	return err == nil && len(ips) > 0
}
