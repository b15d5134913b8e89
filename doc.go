// Package kupon derives aggregate facts from a finite batch of brokerage
// account operations (deposits, withdrawals, trades, coupon and dividend
// payouts, fees, taxes).
//
// The core functionalities include:
//   - Classification: mapping each operation to exactly one category using
//     an ordered table of keyword rules (Russian and English term families).
//   - Aggregation: folding a batch into per-category absolute totals.
//   - Realized profit: FIFO cost-basis matching of sells against open
//     purchase lots, per instrument, with a degrade-gracefully policy for
//     sells that predate the supplied history.
//   - Report composition: period reviews and the full "coupon salary"
//     report (top coupon payers, commissions, portfolio yield, targets).
//
// The engine is stateless: every call re-derives its state from the batch it
// is given, so the two passes are independent and safe to run concurrently.
// Fetching operations, resolving instrument names and rendering output are
// collaborator concerns (see the tinkoff, instrument and renderer packages).
//
// This package serves as the foundational logic for the `kpn` command-line
// tool.
package kupon
