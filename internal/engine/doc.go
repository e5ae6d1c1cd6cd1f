// Package engine turns an email template and one person's records into the
// text of that person's email.
//
// A template document holds a <select> block naming the attribute column and
// value that choose who gets an email, and an <email body> block with the
// text to send. Placeholders in the body are written [[token]]:
//
//   - [[schedule]] expands to the person's program items.
//   - [[prefix|column|suffix]] expands to prefix, the column value and
//     suffix, or to nothing when the value is empty.
//   - [[column]] expands to the column value from the attribute table.
//
// Expansion is a single left-to-right pass; substituted text is never
// scanned again.
package engine
