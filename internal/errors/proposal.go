package errors

var (
	ErrCustomerNotFound = &DomainError{
		Code:    "CUSTOMER_NOT_FOUND",
		Message: "customer not found",
	}
	ErrNoServicesSelected = &DomainError{
		Code:    "NO_SERVICES_SELECTED",
		Message: "customer has no service categories selected",
	}
	ErrProposalAlreadySent = &DomainError{
		Code:    "PROPOSAL_ALREADY_SENT",
		Message: "proposal has already been sent and is frozen",
	}
	ErrProposalNotSent = &DomainError{
		Code:    "PROPOSAL_NOT_SENT",
		Message: "no proposal has been sent for this customer",
	}
)
