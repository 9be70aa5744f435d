package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/iam"
)

// AWSSource discovers IAM users and their attached managed policies.
type AWSSource struct {
	client  *iam.Client
	timeout time.Duration
}

// NewAWSSource builds a source backed by the default AWS credential chain.
func NewAWSSource(ctx context.Context, region string, timeout time.Duration) (*AWSSource, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &AWSSource{client: iam.NewFromConfig(cfg), timeout: timeout}, nil
}

// Name implements Source.
func (s *AWSSource) Name() string { return "aws" }

// Identities implements Source. Each page fetch runs under the configured
// timeout so a stalled API call cannot hang the discovery pass.
func (s *AWSSource) Identities(ctx context.Context) ([]Principal, error) {
	var principals []Principal

	users := iam.NewListUsersPaginator(s.client, &iam.ListUsersInput{})
	for users.HasMorePages() {
		pageCtx, cancel := context.WithTimeout(ctx, s.timeout)
		page, err := users.NextPage(pageCtx)
		cancel()
		if err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}

		for _, user := range page.Users {
			p := Principal{
				ID:           aws.ToString(user.UserId),
				DisplayName:  aws.ToString(user.UserName),
				Reference:    aws.ToString(user.Arn),
				DiscoveredAt: aws.ToTime(user.CreateDate),
			}

			attached, err := s.attachedPolicies(ctx, p.DisplayName)
			if err != nil {
				return nil, fmt.Errorf("list attached policies for %s: %w", p.DisplayName, err)
			}
			p.Entitlements = attached
			principals = append(principals, p)
		}
	}

	return principals, nil
}

func (s *AWSSource) attachedPolicies(ctx context.Context, userName string) ([]Entitlement, error) {
	var out []Entitlement
	pager := iam.NewListAttachedUserPoliciesPaginator(s.client, &iam.ListAttachedUserPoliciesInput{
		UserName: aws.String(userName),
	})
	for pager.HasMorePages() {
		pageCtx, cancel := context.WithTimeout(ctx, s.timeout)
		page, err := pager.NextPage(pageCtx)
		cancel()
		if err != nil {
			return nil, err
		}
		for _, policy := range page.AttachedPolicies {
			out = append(out, Entitlement{
				ID:          aws.ToString(policy.PolicyArn),
				DisplayName: aws.ToString(policy.PolicyName),
			})
		}
	}
	return out, nil
}
