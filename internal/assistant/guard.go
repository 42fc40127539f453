package assistant

import "strings"

// guardProposal enforces "never propose an incomplete booking", whether or
// not the model obeyed its instructions. Incomplete proposals are downgraded
// wholesale to none and the reply gains a clarifying question. Presence is
// the only thing checked; date/time contents are taken as-is. Running the
// guard twice is the same as running it once.
func guardProposal(resp ChatResponse) ChatResponse {
	if resp.Intent.Action != ActionProposeBooking {
		return resp
	}

	var missing []string
	if resp.Intent.ServiceName == "" {
		missing = append(missing, "service")
	}
	if resp.Intent.PreferredDate == "" {
		missing = append(missing, "date")
	}
	if resp.Intent.PreferredTime == "" {
		missing = append(missing, "time")
	}
	if len(missing) == 0 {
		return resp
	}

	resp.Intent.Action = ActionNone

	need := strings.Join(missing, ", ")
	ask := "I still need the following details: " + need + ". Could you provide them?"
	if len(missing) == 1 {
		ask = "I still need the " + need + ". What works for you?"
	}

	if resp.Reply != "" {
		resp.Reply = resp.Reply + "\n\n" + ask
	} else {
		resp.Reply = ask
	}
	return resp
}
