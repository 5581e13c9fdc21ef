package usecase

import "github.com/calldeck/calldeck/internal/pkg/models"

// referredByRule decides what the new account's referred_by becomes.
type referredByRule int

const (
	// refNone leaves referred_by empty; the account is top level.
	refNone referredByRule = iota
	// refActorCode uses the actor's own referral code, generating and
	// persisting one for the actor on first use.
	refActorCode
	// refActorParent copies the actor's own referred_by, so the new account
	// sits at the same depth as the actor's siblings.
	refActorParent
	// refNamedUserCode uses the referral code of an explicitly named
	// subordinate user, lazily assigning that user a code if needed.
	refNamedUserCode
)

// referralCodeRule decides whether the new account gets its own code.
type referralCodeRule int

const (
	codeNone referralCodeRule = iota
	codeFresh
)

// creationPolicy is one entry of the role lattice: how an account of the
// target role is linked into the hierarchy when the actor creates it.
type creationPolicy struct {
	referredBy   referredByRule
	referralCode referralCodeRule
	// supervise records the new account under the actor in the
	// manager-member index.
	supervise bool
}

type rolePair struct {
	actor  string
	target string
}

// creationPolicies is the complete creation lattice. Any (actor, target)
// pair absent from this table is a permission violation; there is no
// fallback branch.
var creationPolicies = map[rolePair]creationPolicy{
	{models.RoleSuperAdmin, models.RoleReseller}: {referredBy: refNone, referralCode: codeFresh},
	{models.RoleSuperAdmin, models.RoleUser}:     {referredBy: refNone, referralCode: codeFresh},
	{models.RoleSuperAdmin, models.RoleManager}:  {referredBy: refNamedUserCode},
	{models.RoleSuperAdmin, models.RoleMember}:   {referredBy: refNamedUserCode},

	{models.RoleReseller, models.RoleReseller}: {referredBy: refActorCode, referralCode: codeFresh},
	{models.RoleReseller, models.RoleUser}:     {referredBy: refActorCode},
	{models.RoleReseller, models.RoleManager}:  {referredBy: refNamedUserCode},
	{models.RoleReseller, models.RoleMember}:   {referredBy: refNamedUserCode},

	{models.RoleUser, models.RoleManager}: {referredBy: refActorCode},
	{models.RoleUser, models.RoleMember}:  {referredBy: refActorCode},

	{models.RoleManager, models.RoleMember}: {referredBy: refActorParent, supervise: true},
}

// lookupCreationPolicy returns the policy for an (actor, target) role pair
func lookupCreationPolicy(actorRole, targetRole string) (creationPolicy, bool) {
	policy, ok := creationPolicies[rolePair{actor: actorRole, target: targetRole}]
	return policy, ok
}
