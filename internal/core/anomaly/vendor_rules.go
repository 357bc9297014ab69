package anomaly

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/domain"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/utils"
)

var (
	invoiceSuffix      = regexp.MustCompile(`(\d+)$`)
	vendorNameDisallow = regexp.MustCompile(`[^A-Za-z0-9\s.\-&]`)
)

const minVendorNameLength = 3

type numberedInvoice struct {
	number int64
	txn    domain.Transaction
}

// InvoiceSuffix extracts the trailing number of an invoice reference such as "INV-0042".
func InvoiceSuffix(invoice string) (int64, bool) {
	match := invoiceSuffix.FindString(strings.TrimSpace(invoice))
	if match == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(match, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// detectInvoiceGaps flags holes in each vendor's invoice numbering. A gap is reported
// against the transaction carrying the lower number.
func detectInvoiceGaps(txns []domain.Transaction, th Thresholds) []domain.RedFlag {
	byVendor := make(map[string][]numberedInvoice)
	vendors := make([]string, 0)
	for _, txn := range txns {
		vendor := strings.TrimSpace(txn.Vendor)
		if vendor == "" || !txn.HasInvoiceNumber() {
			continue
		}
		n, ok := InvoiceSuffix(*txn.InvoiceNumber)
		if !ok {
			continue
		}
		if _, seen := byVendor[vendor]; !seen {
			vendors = append(vendors, vendor)
		}
		byVendor[vendor] = append(byVendor[vendor], numberedInvoice{number: n, txn: txn})
	}

	flags := make([]domain.RedFlag, 0)
	for _, vendor := range vendors {
		items := byVendor[vendor]
		if len(items) < th.MinSequenceLength {
			continue
		}
		sort.SliceStable(items, func(i, j int) bool { return items[i].number < items[j].number })

		for i := 0; i < len(items)-1; i++ {
			lo, hi := items[i].number, items[i+1].number
			if hi-lo <= 1 {
				continue
			}
			missing := strconv.FormatInt(lo+1, 10)
			if hi-lo > 2 {
				missing = fmt.Sprintf("%d to %d", lo+1, hi-1)
			}
			message := fmt.Sprintf("Missing invoice sequence for %s: %s", vendor, missing)
			flags = append(flags, newFlag(items[i].txn, domain.FlagMissingInvoiceSequence, domain.SeverityMedium, message, map[string]any{
				"vendor":    vendor,
				"missing":   missing,
				"gap_start": lo,
				"gap_end":   hi,
			}))
		}
	}
	return flags
}

// detectVendorIssues checks each transaction for a one-time vendor, a malformed vendor
// name and a missing GSTIN on a large payment.
func detectVendorIssues(txns []domain.Transaction, th Thresholds) []domain.RedFlag {
	counts := make(map[string]int)
	for _, txn := range txns {
		counts[strings.TrimSpace(txn.Vendor)]++
	}

	flags := make([]domain.RedFlag, 0)
	for _, txn := range txns {
		vendor := strings.TrimSpace(txn.Vendor)

		if vendor != "" && counts[vendor] == 1 && txn.Amount.GreaterThan(th.OneTimeVendor) {
			message := fmt.Sprintf("High value transaction (%s) with one-time vendor: %s", utils.FormatINR(txn.Amount), vendor)
			flags = append(flags, newFlag(txn, domain.FlagOneTimeVendor, domain.SeverityLow, message, map[string]any{
				"vendor": vendor,
				"amount": txn.Amount.String(),
			}))
		}

		if SuspiciousVendorName(vendor) {
			message := fmt.Sprintf("Unusual vendor name format: %q", vendor)
			flags = append(flags, newFlag(txn, domain.FlagSuspiciousVendorName, domain.SeverityMedium, message, map[string]any{
				"vendor": vendor,
			}))
		}

		if txn.Amount.GreaterThan(th.MissingGSTIN) && !txn.HasGSTIN() {
			message := fmt.Sprintf("High value transaction (%s) missing GSTIN", utils.FormatINR(txn.Amount))
			flags = append(flags, newFlag(txn, domain.FlagMissingGSTIN, domain.SeverityHigh, message, map[string]any{
				"amount": txn.Amount.String(),
			}))
		}
	}
	return flags
}

// SuspiciousVendorName is true for names shorter than three characters or containing
// characters other than letters, digits, whitespace, '.', '-' and '&'.
func SuspiciousVendorName(vendor string) bool {
	return utf8.RuneCountInString(vendor) < minVendorNameLength || vendorNameDisallow.MatchString(vendor)
}
