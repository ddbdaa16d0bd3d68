package prompt

// Template arguments are positional:
//   %[1]s today, %[2]s tomorrow, %[3]d current year, %[4]s NET 30 date, %[5]s NET 60 date.
// Literal percent signs are escaped as %%.

const simpleTemplate = `Extract the task and output JSON. Today is %[1]s.

Date rules:
- "tomorrow" -> "%[2]s"
- "today" -> "%[1]s"
- "next week" -> today plus 7 days
- no date given -> use today

Time rules:
- "noon" -> "12:00"
- "midnight" -> "00:00"
- "3pm" or "3 pm" -> "15:00"
- "9:30am" or "9:30 am" -> "09:30"
- "5" or "5pm" -> "17:00"
- no time given -> leave out dueTime

Output format:
[{"title":"task description","dueDate":"YYYY-MM-DD","dueTime":"HH:MM"}]

Examples:
"reserve table at Tom & Jerry noon tomorrow" -> [{"title":"Reserve table at Tom & Jerry","dueDate":"%[2]s","dueTime":"12:00"}]
"call dentist" -> [{"title":"Call dentist","dueDate":"%[1]s"}]
"meeting at 3pm today" -> [{"title":"Meeting","dueDate":"%[1]s","dueTime":"15:00"}]

Output ONLY the JSON array.`

const invoiceTemplate = `Extract tasks and output a JSON array. Today is %[1]s.

When an invoice has several payment terms, create a SEPARATE task for each payment.

Date rules (use the FIRST rule that matches):
1. EXPLICIT DATES (always win when present):
   - "9-Jan-26", "9/Jan/26" or "Jan-9-26" -> "2026-01-09"
   - "23-Jan-26" -> "2026-01-23"
   - "12.26.25" or "12/26/25" -> "2025-12-26"
   - "Jan 15" or "January 15" -> "%[3]d-01-15"
2. RELATIVE DATES:
   - "TODAY" or "DUE TODAY" -> "%[1]s"
   - "tomorrow" -> "%[2]s"
3. NET TERMS (only when there is NO explicit date):
   - "NET 30" alone -> %[4]s
   - "NET 60" alone -> %[5]s

IMPORTANT: when the text has BOTH an explicit date AND "NET 30", use the explicit date.

Amounts:
- "$46,518.71" -> 46518.71 (drop $ and commas)
- "$-15,187.59" -> -15187.59 (keep the minus sign)
- "$-750" -> -750

Amount sign:
- ACCOUNTS RECEIVABLE (you RECEIVE money) = POSITIVE
  * cues: "Origin:", "From:", "Sold to:", an invoice you sent TO someone else
- ACCOUNTS PAYABLE (you PAY money) = NEGATIVE
  * cues: "Bill from", "Due to:", "Payment to:", an invoice FROM someone else
- an explicit minus sign always stays negative
- when the direction is unclear, use NEGATIVE (payable)

Title and notes:
- ONLY include invoice or reference numbers that appear in the input
- NEVER invent invoice numbers
- keep the title descriptive and short
- only add information that is in the input

Example 1 (invoice number present):
Input: "payment terms 50%% DOWN $60,470.15 DUE TODAY 50%% NET 30 $60,470.15 DUE 12.26.25 Invoice #185"
Output:
[
  {"title":"50%% Down Payment - Invoice #185","dueDate":"%[1]s","amount":60470.15,"notes":"Invoice #185"},
  {"title":"50%% NET 30 Payment - Invoice #185","dueDate":"2025-12-26","amount":60470.15,"notes":"Invoice #185"}
]

Example 2 (no invoice number):
Input: "$46,518.71 Insurance Package 9-Jan-26"
Output:
[
  {"title":"Insurance Package","dueDate":"2026-01-09","amount":46518.71,"notes":""}
]

Example 3 (negative amount):
Input: "Insurance Package $-15,187.59 23-Jan-26"
Output:
[
  {"title":"Insurance Package","dueDate":"2026-01-23","amount":-15187.59,"notes":""}
]

Rules:
- one task per payment
- explicit dates beat NET calculations
- every date is YYYY-MM-DD
- leave notes empty when there is nothing to add

Output ONLY the JSON array.`

const documentTemplate = `Extract INVOICE PAYMENT information from the document and output a JSON array. Today is %[1]s.

CRITICAL:
- you are creating PAYMENT REMINDERS for invoices and bills
- create ONE task per PAYMENT, not per line item
- when payment terms split the payment (e.g. "50%% down, 50%% NET 30"), create a SEPARATE task per payment
- do NOT create several tasks for the same payment
- do NOT create tasks for processing, tracking or verification

Title format:
- single payment: "Invoice #[NUMBER] - [Customer Name]"
- split payments: "Invoice #[NUMBER] - [Payment Description] - [Customer Name]"
- e.g. "Invoice #236 - Eaton Processing"
- e.g. "Invoice #185 - 50%% Down - Customer Name"

Date rules (in priority order):
1. EXPLICIT DATES:
   - "9-Jan-26" or "9/Jan/26" -> "2026-01-09"
   - "12.26.25" or "12/26/25" -> "2025-12-26"
   - "Jan 15" or "January 15" -> "%[3]d-01-15"
2. RELATIVE DATES:
   - "TODAY" or "DUE TODAY" -> "%[1]s"
   - "tomorrow" -> "%[2]s"
3. NET TERMS (only when there is NO explicit date):
   - "NET 30" -> %[4]s
   - "NET 60" -> %[5]s

Amount sign:
- ACCOUNTS RECEIVABLE (you RECEIVE money) = POSITIVE
  * cues: "Origin:", "From:", "Sold to:", an invoice you sent TO someone else
  * e.g. invoice from you to Eaton Processing -> 46028.64
- ACCOUNTS PAYABLE (you PAY money) = NEGATIVE
  * cues: "Bill from", "Due to:", "Payment to:", an invoice FROM someone else
  * e.g. bill from a vendor to you -> -46028.64
- drop $ and commas: "$46,518.71" -> 46518.71
- when the direction is unclear, use NEGATIVE (payable)

Notes:
- customer or counterparty name
- invoice number when present
- payment terms when relevant
- whether it is receivable or payable
- keep it short

Examples:

Receivable:
Input: "Invoice #236, Origin: Your Company, Destination: Eaton Processing LLC, Due: 2026-01-08, Total: $46,028.64"
Output:
[
  {"title":"Invoice #236 - Eaton Processing","dueDate":"2026-01-08","amount":46028.64,"notes":"Receivable - Eaton Processing LLC"}
]

Payable:
Input: "Invoice #789 from ABC Supplies, Due: 2026-01-15, Amount Due: $5,200.00"
Output:
[
  {"title":"Invoice #789 - ABC Supplies","dueDate":"2026-01-15","amount":-5200.00,"notes":"Payable - ABC Supplies"}
]

Split receivable:
Input: "Invoice #185, 50%% DOWN $60,470 DUE TODAY, 50%% NET 30 $60,470 DUE 12.26.25, To: Customer XYZ"
Output:
[
  {"title":"Invoice #185 - 50%% Down Payment - Customer XYZ","dueDate":"%[1]s","amount":60470.00,"notes":"Receivable - 50%% down payment"},
  {"title":"Invoice #185 - 50%% NET 30 - Customer XYZ","dueDate":"2025-12-26","amount":60470.00,"notes":"Receivable - 50%% NET 30 payment"}
]

Output ONLY the JSON array, no other text.`

// User-turn instructions.
const (
	textUserTemplate = `Extract tasks: "%s"`

	// DocumentInstruction accompanies the attached document on the native path.
	DocumentInstruction = "Extract the invoice payment information. Create ONE payment reminder with invoice number, customer name, due date, and total amount. If there are split payment terms, create one task per payment."

	fallbackPrefix = "Extract the invoice payment information from this text. Create ONE payment reminder with invoice number, customer name, due date, and total amount:\n\n"

	// SummarizeInstruction is the user turn for the summarize action.
	SummarizeInstruction = "Summarize this document concisely. Include the main points, key information, and any important details."
)
