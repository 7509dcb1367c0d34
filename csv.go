package ledger

import (
	"bufio"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/folioview/ledger/date"
)

// splitLine splits one CSV line into trimmed fields. It handles
// double-quoted fields and "" escapes the way the dashboard's exports
// use them; it does not support embedded newlines, which never occur
// in these files.
func splitLine(line string) []string {
	var values []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"' && i < len(line)-1 && line[i+1] == '"':
			current.WriteByte('"')
			i++
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			values = append(values, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	values = append(values, strings.TrimSpace(current.String()))
	return values
}

// floatOr0 parses a decimal number, mapping anything unparsable to 0.
// This mirrors the dashboard's parseFloat(...)||0 coercion: malformed
// numeric fields are silently masked, not rejected. Note that
// strconv is stricter than parseFloat ("12abc" is 0 here), which only
// tightens behavior for rows that were already garbage.
func floatOr0(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// DecodeTransactions parses the transaction ledger CSV: a header line
// followed by rows of
//
//	tradeDate,orderType,security,quantity,price[,...]
//
// Rows with fewer than 5 fields are skipped silently. The transaction
// ID is the 0-based data row index and is NOT re-assigned when rows
// are skipped, so IDs may be non-contiguous; downstream code joins on
// ID, never on slice position. A row whose date does not parse is
// skipped with a warning, since a dateless transaction cannot be
// sequenced at all.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	scanner := bufio.NewScanner(r)
	var transactions []Transaction

	row := 0 // 0 is the header
	for scanner.Scan() {
		line := scanner.Text()
		row++
		if row == 1 || strings.TrimSpace(line) == "" {
			continue
		}
		values := splitLine(line)
		if len(values) < 5 {
			continue
		}

		tradeDate, err := date.Parse(values[0])
		if err != nil {
			slog.Warn("skipping transaction row with bad date", "row", row, "date", values[0])
			continue
		}

		quantity := floatOr0(values[3])
		price := floatOr0(values[4])
		netAmount := quantity * price
		if strings.EqualFold(values[1], OrderSell) {
			netAmount = -netAmount
		}

		transactions = append(transactions, Transaction{
			TradeDate: tradeDate,
			OrderType: values[1],
			Security:  values[2],
			Quantity:  quantity,
			Price:     price,
			NetAmount: netAmount,
			ID:        row - 2, // 0-based data row index
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return transactions, nil
}

// DecodeSplitHistory parses the split history CSV: a header line
// followed by rows of
//
//	symbol,splitDate,splitRatio,splitMultiplier
//
// Rows with fewer than 4 fields are skipped; a malformed multiplier
// defaults to 1.0 (a no-op split) rather than poisoning adjustment
// math downstream.
func DecodeSplitHistory(r io.Reader) (SplitHistory, error) {
	scanner := bufio.NewScanner(r)
	var splits SplitHistory

	row := 0
	for scanner.Scan() {
		line := scanner.Text()
		row++
		if row == 1 || strings.TrimSpace(line) == "" {
			continue
		}
		values := splitLine(line)
		if len(values) < 4 {
			continue
		}

		splitDate, err := date.Parse(values[1])
		if err != nil {
			slog.Warn("skipping split row with bad date", "row", row, "date", values[1])
			continue
		}

		multiplier := floatOr0(values[3])
		if multiplier == 0 {
			multiplier = 1.0
		}

		splits = append(splits, Split{
			Symbol:     values[0],
			SplitDate:  splitDate,
			Ratio:      values[2],
			Multiplier: multiplier,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return splits, nil
}
