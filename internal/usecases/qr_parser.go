package usecases

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/volatiletech/null/v8"
	"aurum-pay.backend/internal/domain/entities"
	domainerrors "aurum-pay.backend/internal/domain/errors"
)

var eip681Pattern = regexp.MustCompile(`^ethereum:(0x[a-fA-F0-9]{40})(?:@(\d+))?(?:\?(.*))?$`)

// QRParser decodes merchant payment QR payloads into a MerchantTarget.
// Three formats are accepted: EIP-681 style payment URIs, a JSON object
// with address/chainId/token/amount fields, and a bare wallet address.
type QRParser struct {
	registry *ChainRegistry
}

// NewQRParser creates a new QR parser
func NewQRParser(registry *ChainRegistry) *QRParser {
	return &QRParser{registry: registry}
}

// ParseTarget decodes qrData. Unknown chain ids are returned as parsed;
// the route selector decides whether the chain is actually supported.
func (p *QRParser) ParseTarget(qrData string) (*entities.MerchantTarget, error) {
	qrData = strings.TrimSpace(qrData)

	if strings.HasPrefix(qrData, "ethereum:") {
		return p.parsePaymentURI(qrData)
	}

	if strings.HasPrefix(qrData, "{") {
		return p.parseJSONPayload(qrData)
	}

	if isValidEVMAddress(qrData) {
		return p.target(qrData, 1, "", null.String{}), nil
	}

	return nil, fmt.Errorf("%w: unrecognized QR payload", domainerrors.ErrParseFailed)
}

func (p *QRParser) parsePaymentURI(qrData string) (*entities.MerchantTarget, error) {
	m := eip681Pattern.FindStringSubmatch(qrData)
	if m == nil {
		return nil, fmt.Errorf("%w: malformed payment URI", domainerrors.ErrParseFailed)
	}

	address := m[1]
	chainID := 1
	if m[2] != "" {
		id, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid chain id in payment URI", domainerrors.ErrParseFailed)
		}
		chainID = id
	}

	params, err := url.ParseQuery(m[3])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid query in payment URI", domainerrors.ErrParseFailed)
	}

	amount := null.String{}
	if raw := params.Get("value"); raw != "" {
		// value carries wei; convert to a human token amount.
		wei, ok := new(big.Int).SetString(raw, 10)
		if !ok {
			return nil, fmt.Errorf("%w: invalid value parameter", domainerrors.ErrParseFailed)
		}
		amount = null.StringFrom(fromSmallestUnit(wei, TokenDecimals))
	} else if raw := params.Get("amount"); raw != "" {
		amount = null.StringFrom(raw)
	}

	return p.target(address, chainID, params.Get("token"), amount), nil
}

func (p *QRParser) parseJSONPayload(qrData string) (*entities.MerchantTarget, error) {
	var payload struct {
		Address string          `json:"address"`
		ChainID int             `json:"chainId"`
		Token   string          `json:"token"`
		Amount  json.RawMessage `json:"amount"`
	}
	if err := json.Unmarshal([]byte(qrData), &payload); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON payload", domainerrors.ErrParseFailed)
	}
	if !isValidEVMAddress(payload.Address) {
		return nil, fmt.Errorf("%w: missing or invalid address in JSON payload", domainerrors.ErrParseFailed)
	}

	chainID := payload.ChainID
	if chainID == 0 {
		chainID = 1
	}

	amount := null.String{}
	if len(payload.Amount) > 0 {
		// Amount may arrive as a JSON number or string.
		var s string
		if err := json.Unmarshal(payload.Amount, &s); err == nil {
			amount = null.StringFrom(s)
		} else {
			var f float64
			if err := json.Unmarshal(payload.Amount, &f); err != nil {
				return nil, fmt.Errorf("%w: invalid amount in JSON payload", domainerrors.ErrParseFailed)
			}
			amount = null.StringFrom(strconv.FormatFloat(f, 'f', -1, 64))
		}
	}

	return p.target(payload.Address, chainID, payload.Token, amount), nil
}

func (p *QRParser) target(address string, chainID int, token string, amount null.String) *entities.MerchantTarget {
	if token == "" {
		token = p.registry.NativeSymbol(chainID)
	}
	network := "unknown"
	if name := p.registry.ChainName(chainID); name != unknownChainName {
		network = strings.ToLower(name)
	}
	return &entities.MerchantTarget{
		Address: address,
		ChainID: chainID,
		Token:   token,
		Amount:  amount,
		Network: network,
	}
}
