package command

import "testing"

func TestApplyPostingRules(t *testing.T) {
	tests := []struct {
		name       string
		entry      ParsedEntry
		wantDebit  float64
		wantCredit float64
		wantMoved  bool
	}{
		{
			name:       "revenue moves debit to credit",
			entry:      ParsedEntry{TypeOfOperation: "Revenue - Rental", Debit: 200},
			wantDebit:  0,
			wantCredit: 200,
			wantMoved:  true,
		},
		{
			name:       "expense moves credit to debit",
			entry:      ParsedEntry{TypeOfOperation: "EXP - Utilities", Credit: 450},
			wantDebit:  450,
			wantCredit: 0,
			wantMoved:  true,
		},
		{
			name:       "revenue already on credit side",
			entry:      ParsedEntry{TypeOfOperation: "Revenue - Sales", Credit: 300},
			wantDebit:  0,
			wantCredit: 300,
			wantMoved:  false,
		},
		{
			name:       "expense already on debit side",
			entry:      ParsedEntry{TypeOfOperation: "EXP - Office Supplies", Debit: 120},
			wantDebit:  120,
			wantCredit: 0,
			wantMoved:  false,
		},
		{
			name:       "no operation leaves amounts alone",
			entry:      ParsedEntry{TypeOfOperation: "", Credit: 99},
			wantDebit:  0,
			wantCredit: 99,
			wantMoved:  false,
		},
		{
			name:       "unknown prefix leaves amounts alone",
			entry:      ParsedEntry{TypeOfOperation: "Transfer - Internal", Debit: 10},
			wantDebit:  10,
			wantCredit: 0,
			wantMoved:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := tt.entry
			rule := ApplyPostingRules(&entry)

			if (rule != nil) != tt.wantMoved {
				t.Errorf("rule = %v, wantMoved %v", rule, tt.wantMoved)
			}
			if entry.Debit != tt.wantDebit || entry.Credit != tt.wantCredit {
				t.Errorf("amounts = debit %v / credit %v, want %v / %v",
					entry.Debit, entry.Credit, tt.wantDebit, tt.wantCredit)
			}
		})
	}
}
