package soap

import "strconv"

// Operation is the closed set of RPC operations the endpoint serves. The
// decoder only ever produces one of these five values.
type Operation string

const (
	OpAuthenticateUser Operation = "authenticateUser"
	OpListUsers        Operation = "listUsers"
	OpAddUser          Operation = "addUser"
	OpUpdateUser       Operation = "updateUser"
	OpDeleteUser       Operation = "deleteUser"
)

// Request is one decoded RPC call. Exactly one of the typed request
// variants is carried, matching Op.
type Request interface {
	Op() Operation
}

type AuthenticateUserRequest struct {
	Username string
	Password string
}

func (AuthenticateUserRequest) Op() Operation { return OpAuthenticateUser }

type ListUsersRequest struct {
	Token string
}

func (ListUsersRequest) Op() Operation { return OpListUsers }

type AddUserRequest struct {
	Token    string
	Username string
	Password string
	Role     string
}

func (AddUserRequest) Op() Operation { return OpAddUser }

type UpdateUserRequest struct {
	Token    string
	UserID   int64
	Username string
	Password string
	Role     string
}

func (UpdateUserRequest) Op() Operation { return OpUpdateUser }

type DeleteUserRequest struct {
	Token  string
	UserID int64
}

func (DeleteUserRequest) Op() Operation { return OpDeleteUser }

// decodeRequest identifies the operation among the body's children and
// binds its arguments. Operation tags must be qualified with the service
// namespace (or its conventional tns prefix); anything else fails with
// ErrUnknownOperation.
func decodeRequest(body *node) (Request, error) {
	for i := range body.Children {
		child := &body.Children[i]
		if !acceptedServiceSpace(child.XMLName.Space) {
			continue
		}

		switch Operation(child.XMLName.Local) {
		case OpAuthenticateUser:
			return AuthenticateUserRequest{
				Username: textArg(child, "username"),
				Password: textArg(child, "password"),
			}, nil
		case OpListUsers:
			return ListUsersRequest{Token: textArg(child, "token")}, nil
		case OpAddUser:
			return AddUserRequest{
				Token:    textArg(child, "token"),
				Username: textArg(child, "username"),
				Password: textArg(child, "password"),
				Role:     textArg(child, "role"),
			}, nil
		case OpUpdateUser:
			return UpdateUserRequest{
				Token:    textArg(child, "token"),
				UserID:   intArg(child, "userId"),
				Username: textArg(child, "username"),
				Password: textArg(child, "password"),
				Role:     textArg(child, "role"),
			}, nil
		case OpDeleteUser:
			return DeleteUserRequest{
				Token:  textArg(child, "token"),
				UserID: intArg(child, "userId"),
			}, nil
		}
	}
	return nil, ErrUnknownOperation
}

func acceptedServiceSpace(space string) bool {
	return space == serviceNS || space == "tns"
}

func textArg(n *node, local string) string {
	text, _ := n.childText(local)
	return text
}

// intArg parses an integer argument, yielding zero when absent or not a
// number. Zero reads as "not provided" downstream.
func intArg(n *node, local string) int64 {
	text, ok := n.childText(local)
	if !ok {
		return 0
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
