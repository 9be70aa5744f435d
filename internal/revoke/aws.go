package revoke

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/iam"
)

// AWSRevoker detaches a managed policy from an IAM user.
type AWSRevoker struct {
	client  *iam.Client
	timeout time.Duration
}

// NewAWSRevoker builds a revoker backed by the default AWS credential chain.
func NewAWSRevoker(ctx context.Context, region string, timeout time.Duration) (*AWSRevoker, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &AWSRevoker{client: iam.NewFromConfig(cfg), timeout: timeout}, nil
}

// Revoke implements Revoker. principalRef is the user ARN, entitlementRef
// the policy ARN.
func (r *AWSRevoker) Revoke(ctx context.Context, principalRef, entitlementRef string) error {
	userName, err := userNameFromARN(principalRef)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err = r.client.DetachUserPolicy(ctx, &iam.DetachUserPolicyInput{
		UserName:  aws.String(userName),
		PolicyArn: aws.String(entitlementRef),
	})
	if err != nil {
		return fmt.Errorf("detach policy %s from %s: %w", entitlementRef, userName, err)
	}
	return nil
}

// userNameFromARN extracts the user name from an IAM user ARN such as
// arn:aws:iam::123456789012:user/alice (path segments allowed).
func userNameFromARN(arn string) (string, error) {
	idx := strings.Index(arn, ":user/")
	if idx < 0 {
		return "", fmt.Errorf("not an IAM user ARN: %q", arn)
	}
	rest := arn[idx+len(":user/"):]
	if slash := strings.LastIndex(rest, "/"); slash >= 0 {
		rest = rest[slash+1:]
	}
	if rest == "" {
		return "", fmt.Errorf("not an IAM user ARN: %q", arn)
	}
	return rest, nil
}
