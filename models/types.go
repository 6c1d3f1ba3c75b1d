package models

// Election phase constants
const (
	PhaseNotOpen   = "not_open"
	PhaseOngoing   = "ongoing"
	PhaseConcluded = "concluded"
)

// Outcome status constants (wire values predate this service)
const (
	OutcomeOngoing   = "Ongoing"
	OutcomeCompleted = "Completed"
)

// WinnerHungParliament is the outcome sentinel reported when two or more
// parties tie for the maximum seat count.
const WinnerHungParliament = "Hung Parliament"

// Account role constants returned by authentication
const (
	RoleVoter        = "voter"
	RoleCommissioner = "commissioner"
	RoleNone         = "none"
)

// Request types

type RegisterRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	FullName       string `json:"full_name"`
	DOB            string `json:"dob"`
	UVC            string `json:"uvc"`
	ConstituencyID int    `json:"constituency_id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CastVoteRequest struct {
	CandidateID int `json:"candidate_id"`
}

type TransitionRequest struct {
	Target string `json:"target"`
}

// Response types

type RegisterResponse struct {
	Status  string `json:"status"`
	VoterID string `json:"voter_id"`
}

type LoginResponse struct {
	Status  string `json:"status"`
	Account string `json:"account,omitempty"`
}

type CastVoteResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type VoterStatusResponse struct {
	Email        string `json:"email"`
	HasVoted     bool   `json:"has_voted"`
	Constituency string `json:"constituency"`
}

type ConstituencyResultsResponse struct {
	Constituency string               `json:"constituency"`
	Results      []ConstituencyResult `json:"results"`
}

type PhaseResponse struct {
	Phase string `json:"phase"`
}

// Domain types

type Constituency struct {
	ID   int    `json:"constituency_id"`
	Name string `json:"constituency_name"`
}

type Party struct {
	ID   int    `json:"party_id"`
	Name string `json:"party_name"`
}

// Candidate is the catalog view of a candidate, tagged with the resolved
// party and constituency names.
type Candidate struct {
	ID           int    `json:"candidate_id"`
	Name         string `json:"candidate"`
	Party        string `json:"party"`
	Constituency string `json:"constituency"`
	VoteCount    int    `json:"vote_count"`
}

type Voter struct {
	Email          string `json:"email"`
	FullName       string `json:"full_name"`
	DOB            string `json:"dob"`
	PasswordHash   string `json:"-"` // Never expose in JSON
	UVC            string `json:"-"` // Never expose in JSON
	ConstituencyID int    `json:"constituency_id"`
	CandidateID    *int   `json:"candidate_id,omitempty"`
}

// Tabulation types

type ConstituencyResult struct {
	Candidate string `json:"candidate"`
	Party     string `json:"party"`
	VoteCount int    `json:"vote_count"`
}

type PartySeats struct {
	Party string `json:"party"`
	Seat  int    `json:"seat"`
}

type ElectionOutcome struct {
	Status string       `json:"status"`
	Winner string       `json:"winner,omitempty"`
	Seats  []PartySeats `json:"seats,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
