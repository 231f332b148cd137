// Package chaingateway is the HTTP client for the chain gateway, the sidecar
// that holds signing keys and executes on-chain calls on the platform's
// behalf. The engine never talks to a node directly; every custody move, swap,
// pool join and farm call goes through the gateway, and this client maps the
// gateway's error codes back onto the engine's sentinel errors.
package chaingateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"vaultcraft/internal/domain"
	"vaultcraft/internal/repository"

	"github.com/shopspring/decimal"
)

type Client struct {
	HttpClient *http.Client
	BaseUrl    string
	ApiKey     string
}

func NewClient(httpClient *http.Client, baseUrl, apiKey string) Client {
	return Client{
		HttpClient: httpClient,
		BaseUrl:    baseUrl,
		ApiKey:     apiKey,
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// domainErrorFor translates gateway error codes into sentinel errors so
// callers can errors.Is against them without knowing the wire format.
func domainErrorFor(code string) error {
	switch code {
	case "INSUFFICIENT_BALANCE":
		return domain.ErrInsufficientBalance
	case "INSUFFICIENT_ALLOWANCE":
		return domain.ErrInsufficientAllowance
	case "SLIPPAGE_EXCEEDED":
		return domain.ErrSlippageExceeded
	case "ROUTE_UNAVAILABLE":
		return domain.ErrRouteUnavailable
	case "UNKNOWN_ASSET":
		return domain.ErrUnknownAsset
	}
	return nil
}

func (c Client) post(ctx context.Context, path string, requestBody any, out any) error {
	bodyBytes, err := json.Marshal(requestBody)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseUrl+path, bytes.NewReader(bodyBytes))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.ApiKey)

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway call %s failed: %w", path, err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != 200 {
		errJson := errorResponse{}
		if err := json.Unmarshal(responseBytes, &errJson); err != nil {
			return fmt.Errorf("gateway call %s failed with status %d", path, response.StatusCode)
		}
		if sentinel := domainErrorFor(errJson.Code); sentinel != nil {
			return fmt.Errorf("%w: %s", sentinel, errJson.Error)
		}
		return fmt.Errorf("gateway call %s failed with status %d: %s", path, response.StatusCode, errJson.Error)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(responseBytes, out); err != nil {
		return fmt.Errorf("failed to parse gateway response from %s: %w", path, err)
	}
	return nil
}

// asset custody

type transferRequest struct {
	Asset  string          `json:"asset"`
	From   string          `json:"from,omitempty"`
	Owner  string          `json:"owner,omitempty"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}

func (c Client) Transfer(ctx context.Context, asset, from, to string, amount decimal.Decimal) error {
	return c.post(ctx, "/asset/transfer", transferRequest{
		Asset:  asset,
		From:   from,
		To:     to,
		Amount: amount,
	}, nil)
}

func (c Client) TransferFrom(ctx context.Context, asset, owner, to string, amount decimal.Decimal) error {
	return c.post(ctx, "/asset/transferFrom", transferRequest{
		Asset:  asset,
		Owner:  owner,
		To:     to,
		Amount: amount,
	}, nil)
}

func (c Client) BalanceOf(ctx context.Context, asset, owner string) (decimal.Decimal, error) {
	var out struct {
		Balance decimal.Decimal `json:"balance"`
	}
	err := c.post(ctx, "/asset/balanceOf", map[string]string{
		"asset": asset,
		"owner": owner,
	}, &out)
	if err != nil {
		return decimal.Zero, err
	}
	return out.Balance, nil
}

// exchange router

func (c Client) SwapExactInputSingle(ctx context.Context, req repository.SwapExactInputSingleRequest) (decimal.Decimal, error) {
	var out struct {
		AmountOut decimal.Decimal `json:"amountOut"`
	}
	err := c.post(ctx, "/exchange/swapExactInputSingle", req, &out)
	if err != nil {
		return decimal.Zero, err
	}
	return out.AmountOut, nil
}

func (c Client) SpotRate(ctx context.Context, tokenIn, tokenOut string) (decimal.Decimal, error) {
	var out struct {
		Rate decimal.Decimal `json:"rate"`
	}
	err := c.post(ctx, "/exchange/spotRate", map[string]string{
		"tokenIn":  tokenIn,
		"tokenOut": tokenOut,
	}, &out)
	if err != nil {
		return decimal.Zero, err
	}
	return out.Rate, nil
}

// liquidity pool

type joinPoolRequest struct {
	PoolID   string               `json:"poolID"`
	Owner    string               `json:"owner"`
	AssetsIn []domain.AssetAmount `json:"assetsIn"`
}

func (c Client) Join(ctx context.Context, poolID, owner string, assetsIn []domain.AssetAmount) (decimal.Decimal, error) {
	var out struct {
		LpOut decimal.Decimal `json:"lpOut"`
	}
	err := c.post(ctx, "/pool/join", joinPoolRequest{
		PoolID:   poolID,
		Owner:    owner,
		AssetsIn: assetsIn,
	}, &out)
	if err != nil {
		return decimal.Zero, err
	}
	return out.LpOut, nil
}

type exitPoolRequest struct {
	PoolID    string          `json:"poolID"`
	Owner     string          `json:"owner"`
	LpUnitsIn decimal.Decimal `json:"lpUnitsIn"`
}

func (c Client) Exit(ctx context.Context, poolID, owner string, lpUnitsIn decimal.Decimal) ([]domain.AssetAmount, error) {
	var out struct {
		AssetsOut []domain.AssetAmount `json:"assetsOut"`
	}
	err := c.post(ctx, "/pool/exit", exitPoolRequest{
		PoolID:    poolID,
		Owner:     owner,
		LpUnitsIn: lpUnitsIn,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.AssetsOut, nil
}

func (c Client) RatePerLpUnit(ctx context.Context, poolID, asset string) (decimal.Decimal, error) {
	var out struct {
		Rate decimal.Decimal `json:"rate"`
	}
	err := c.post(ctx, "/pool/ratePerLpUnit", map[string]string{
		"poolID": poolID,
		"asset":  asset,
	}, &out)
	if err != nil {
		return decimal.Zero, err
	}
	return out.Rate, nil
}

// auto-compounding farm

type farmRequest struct {
	FarmAccount string          `json:"farmAccount"`
	Owner       string          `json:"owner"`
	Amount      decimal.Decimal `json:"amount"`
}

func (c Client) Deposit(ctx context.Context, farmAccount, owner string, lpUnits decimal.Decimal) (decimal.Decimal, error) {
	var out struct {
		FarmShares decimal.Decimal `json:"farmShares"`
	}
	err := c.post(ctx, "/farm/deposit", farmRequest{
		FarmAccount: farmAccount,
		Owner:       owner,
		Amount:      lpUnits,
	}, &out)
	if err != nil {
		return decimal.Zero, err
	}
	return out.FarmShares, nil
}

func (c Client) Withdraw(ctx context.Context, farmAccount, owner string, farmShares decimal.Decimal) (decimal.Decimal, error) {
	var out struct {
		LpOut decimal.Decimal `json:"lpOut"`
	}
	err := c.post(ctx, "/farm/withdraw", farmRequest{
		FarmAccount: farmAccount,
		Owner:       owner,
		Amount:      farmShares,
	}, &out)
	if err != nil {
		return decimal.Zero, err
	}
	return out.LpOut, nil
}

func (c Client) PricePerShare(ctx context.Context, farmAccount string) (decimal.Decimal, error) {
	var out struct {
		PricePerShare decimal.Decimal `json:"pricePerShare"`
	}
	err := c.post(ctx, "/farm/pricePerShare", map[string]string{
		"farmAccount": farmAccount,
	}, &out)
	if err != nil {
		return decimal.Zero, err
	}
	return out.PricePerShare, nil
}

// allowlist gate

type eligibilityRequest struct {
	Account string   `json:"account"`
	Proof   []string `json:"proof"`
}

func (c Client) IsEligible(ctx context.Context, account string, proof []string) (bool, error) {
	var out struct {
		Eligible bool `json:"eligible"`
	}
	err := c.post(ctx, "/gate/eligibility", eligibilityRequest{
		Account: account,
		Proof:   proof,
	}, &out)
	if err != nil {
		return false, err
	}
	return out.Eligible, nil
}

// UpdateAllowlist registers accounts with the gate. Admin only, the gateway
// rejects it for api keys without the operator role.
func (c Client) UpdateAllowlist(ctx context.Context, accounts []string) error {
	var out struct {
		Added int `json:"added"`
	}
	return c.post(ctx, "/gate/allowlist", map[string][]string{
		"accounts": accounts,
	}, &out)
}
