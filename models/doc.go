// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest: email, password, full_name, dob, uvc, constituency_id
  - LoginRequest: email, password
  - CastVoteRequest: candidate_id
  - TransitionRequest: target phase

# Response Types

Types for JSON responses:

  - RegisterResponse: status, voter_id
  - LoginResponse: status, account (voter or commissioner)
  - CastVoteResponse: status, message
  - VoterStatusResponse: email, has_voted, constituency
  - ConstituencyResultsResponse: constituency, results
  - PhaseResponse: phase
  - ErrorResponse: error, message

The JSON field names (vote_count, seat, "Hung Parliament", ...) match the
wire format established by earlier GEVS deployments; clients depend on them.

# Domain Types

Internal data structures:

  - Constituency, Party: reference data
  - Candidate: catalog view with resolved party/constituency names and tally
  - Voter: registration row (secret hash and UVC never serialized)
  - ConstituencyResult, PartySeats, ElectionOutcome: tabulation results

# Constants

Election phases (monotonic: not_open → ongoing → concluded):

	PhaseNotOpen   = "not_open"
	PhaseOngoing   = "ongoing"
	PhaseConcluded = "concluded"

Outcome statuses:

	OutcomeOngoing   = "Ongoing"
	OutcomeCompleted = "Completed"

Account roles:

	RoleVoter        = "voter"
	RoleCommissioner = "commissioner"
	RoleNone         = "none"

WinnerHungParliament is reported when two or more parties tie for the
maximum seat count.
*/
package models
