// Package lucro is the bookkeeping core of a small business: products, sales,
// expenses, customers, goals and achievements of a single local user.
//
// The core functionalities include:
//   - Ledger Store: the single source of truth of the user's collections,
//     written through to a Storage after every mutation.
//   - Derived Metrics: stateless functions computing daily, weekly and monthly
//     totals, profit, goal progress, best sellers and required sales from a
//     Ledger.
//   - Achievements: one-way badges unlocked by patterns in the sales history.
//   - Pricing: the suggested price of a product for a desired margin.
//
// This package serves as the foundational logic for the `lcr` command-line
// tool and its keyword assistant.
package lucro
