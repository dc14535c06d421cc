// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/crossfs/gocopy/pkg/fs"
	"github.com/crossfs/gocopy/pkg/lfs"
	"github.com/crossfs/gocopy/pkg/log"
	"github.com/crossfs/gocopy/pkg/s3fs"
	"github.com/crossfs/gocopy/pkg/ts"
)

const (
	GoCopyVersion = "0.0.1"
)

// AWS Flags
const (
	// Profile
	flagAWSPartition     = "aws-partition"
	flagAWSProfile       = "aws-profile"
	flagAWSDefaultRegion = "aws-default-region"
	flagAWSRegion        = "aws-region"
	// Credentials
	flagAWSAccessKeyID     = "aws-access-key-id"
	flagAWSSecretAccessKey = "aws-secret-access-key"
	flagAWSSessionToken    = "aws-session-token"
	// Client
	flagAWSRetryMaxAttempts = "aws-retry-max-attempts"
	// TLS
	flagAWSInsecureSkipVerify = "aws-insecure-skip-verify"
	// Miscellaneous
	flagAWSS3Endpoint     = "aws-s3-endpoint"
	flagAWSS3UsePathStyle = "aws-s3-use-path-style"
	flagBucketKeyEnabled  = "aws-bucket-key-enabled"
)

// Copy and Move Flags
const (
	flagReplaceExisting = "replace-existing"
	flagCopyAttributes  = "copy-attributes"
	flagNoFollowLinks   = "no-follow-links"
	flagAtomic          = "atomic"
	flagParents         = "parents"
	flagPartSize        = "part-size"
)

// Sync Flags
const (
	flagCheckTimestamps    = "check-timestamps"
	flagSyncLimit          = "limit"
	flagThreads            = "threads"
	flagTimestampPrecision = "timestamp-precision"
)

// List Flags
const (
	flagTimeLayout          = "time-layout"
	flagTimeZone            = "time-zone"
	flagMaxPages            = "max-pages"
	flagMaxDirectoryEntries = "max-directory-entries"
)

// Log Flags
const (
	flagLogPath            = "log"
	flagLogPerm            = "log-perm"
	flagLogClientSigning   = "log-client-signing"
	flagLogClientRequests  = "log-client-requests"
	flagLogClientResponses = "log-client-responses"
	flagLogClientRetries   = "log-client-retries"
)

// Debug Flag
const (
	flagDebug = "debug"
)

// Defaults
const (
	DefaultLimit              = -1
	DefaultPartSize           = 1_048_576 * 100 // 100 MiB
	MinimumPartSize           = 1_048_576 * 5   // 5 MiB
	DefaultTimestampPrecision = time.Second
)

func initAWSFlags(flag *pflag.FlagSet) {
	// Profile
	flag.String(flagAWSPartition, "aws", "AWS Partition")
	flag.String(flagAWSProfile, "default", "AWS Profile")
	flag.String(flagAWSDefaultRegion, "", "AWS Default Region")
	flag.String(flagAWSRegion, "", "AWS Region (overrides default region)")
	// Credentials
	flag.String(flagAWSAccessKeyID, "", "AWS Access Key ID")
	flag.String(flagAWSSecretAccessKey, "", "AWS Secret Access Key")
	flag.String(flagAWSSessionToken, "", "AWS Session Token")
	// Client
	flag.Int(flagAWSRetryMaxAttempts, 3, "the maximum number attempts an AWS API client will call an operation that fails with a retryable error")
	// TLS
	flag.Bool(flagAWSInsecureSkipVerify, false, "Skip verification of AWS TLS certificate")
	// Miscellaneous
	flag.String(flagAWSS3Endpoint, "", "AWS S3 Endpoint URL")
	flag.Bool(flagAWSS3UsePathStyle, false, "Use path-style addressing (default is to use virtual-host-style addressing)")
	flag.Bool(flagBucketKeyEnabled, false, "bucket key enabled")
	flag.Int(flagMaxPages, -1, "maximum number of pages to return when listing a directory")
	flag.Int(flagMaxDirectoryEntries, -1, "maximum number of directory entries to return")
}

func initCopyFlags(flag *pflag.FlagSet) {
	flag.Bool(flagReplaceExisting, false, "replace the destination if it already exists")
	flag.Bool(flagCopyAttributes, false, "copy the source attributes to the destination")
	flag.Bool(flagNoFollowLinks, false, "do not follow symbolic links when reading the source attributes")
	flag.Bool(flagParents, false, "create parent directories for destination if they do not exist")
	flag.Int(flagPartSize, DefaultPartSize, fmt.Sprintf("size of parts in bytes when transferring to S3 (minimum %d)", MinimumPartSize))
}

func initMoveFlags(flag *pflag.FlagSet) {
	initCopyFlags(flag)
	flag.Bool(flagAtomic, false, "require the move to be atomic (always rejected between providers)")
}

func initSyncFlags(flag *pflag.FlagSet) {
	flag.Bool(flagCopyAttributes, false, "copy the source attributes of each file to the destination")
	flag.Bool(flagParents, false, "create parent directories for destination if they do not exist")
	flag.Int(flagSyncLimit, DefaultLimit, "limit number of files copied")
	flag.Bool(flagCheckTimestamps, false, "check timestamps are equal")
	flag.Int(flagThreads, 1, "maximum number of parallel threads")
	flag.Duration(flagTimestampPrecision, DefaultTimestampPrecision, "precision to use when checking timestamps")
	flag.Int(flagPartSize, DefaultPartSize, fmt.Sprintf("size of parts in bytes when transferring to S3 (minimum %d)", MinimumPartSize))
}

func initListFlags(flag *pflag.FlagSet) {
	flag.String(flagTimeLayout, "Default", "the layout to use for file timestamps.  Use go layout format, or the name of a layout.  Use the layouts command to show all named layouts.")
	flag.String(flagTimeZone, "Local", "the timezone to use for file timestamps")
}

func initLogFlags(flag *pflag.FlagSet) {
	flag.String(flagLogPath, "-", "path to the log output.  Defaults to the operating system's stdout device.")
	flag.String(flagLogPerm, "0600", "file permissions for log output file as unix file mode.")
	flag.Bool(flagLogClientSigning, false, "log AWS client signature requests")
	flag.Bool(flagLogClientRequests, false, "log AWS client requests")
	flag.Bool(flagLogClientResponses, false, "log AWS client responses")
	flag.Bool(flagLogClientRetries, false, "log AWS client retries")
}

func initDebugFlags(flag *pflag.FlagSet) {
	flag.Bool(flagDebug, false, "print debug messages")
}

func initCopyCommandFlags(flag *pflag.FlagSet) {
	initDebugFlags(flag)
	initAWSFlags(flag)
	initCopyFlags(flag)
	initLogFlags(flag)
}

func initMoveCommandFlags(flag *pflag.FlagSet) {
	initDebugFlags(flag)
	initAWSFlags(flag)
	initMoveFlags(flag)
	initLogFlags(flag)
}

func initSyncCommandFlags(flag *pflag.FlagSet) {
	initDebugFlags(flag)
	initAWSFlags(flag)
	initSyncFlags(flag)
	initLogFlags(flag)
}

func initListCommandFlags(flag *pflag.FlagSet) {
	initDebugFlags(flag)
	initAWSFlags(flag)
	initListFlags(flag)
	initLogFlags(flag)
}

func initViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	err := v.BindPFlags(cmd.Flags())
	if err != nil {
		return v, fmt.Errorf("error binding flag set to viper: %w", err)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv() // set environment variables to overwrite config
	return v, nil
}

func checkLogConfig(v *viper.Viper) error {
	logPath := v.GetString(flagLogPath)
	if len(logPath) == 0 {
		return fmt.Errorf("log path is missing")
	}
	logPerm := v.GetString(flagLogPerm)
	if len(logPerm) == 0 {
		return fmt.Errorf("log perm is missing")
	}
	_, err := strconv.ParseUint(logPerm, 8, 32)
	if err != nil {
		return fmt.Errorf("invalid format for log perm: %s", logPerm)
	}
	return nil
}

func checkPartSize(v *viper.Viper) error {
	if partSize := v.GetInt(flagPartSize); partSize < MinimumPartSize {
		return fmt.Errorf("part size %d is less than the minimum part size %d", partSize, MinimumPartSize)
	}
	return nil
}

func checkCopyConfig(v *viper.Viper, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expecting 2 positional arguments for source and destination, but found %d arguments", len(args))
	}
	if err := checkLogConfig(v); err != nil {
		return fmt.Errorf("error with log configuration: %w", err)
	}
	return checkPartSize(v)
}

func checkSyncConfig(v *viper.Viper, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expecting 2 positional arguments for source and destination, but found %d arguments", len(args))
	}

	if strings.HasPrefix(args[0], "s3://") && strings.HasPrefix(args[1], "s3://") {
		if err := s3fs.Check(args[0][len("s3://"):], args[1][len("s3://"):]); err != nil {
			return err
		}
	} else if !strings.HasPrefix(args[0], "s3://") && !strings.HasPrefix(args[1], "s3://") {
		sourcePath := strings.TrimPrefix(args[0], "file://")
		destinationPath := strings.TrimPrefix(args[1], "file://")
		// check that source and destination must be different
		if args[0] == args[1] {
			return fmt.Errorf("source and destination must be different: %q", args[0])
		}
		// check for cycle errors
		if err := lfs.Check(sourcePath, destinationPath); err != nil {
			return err
		}
	}
	if err := checkLogConfig(v); err != nil {
		return fmt.Errorf("error with log configuration: %w", err)
	}
	if err := checkPartSize(v); err != nil {
		return err
	}
	if threads := v.GetInt(flagThreads); threads == 0 {
		return errors.New("threads cannot be zero")
	}
	return nil
}

func checkListConfig(v *viper.Viper, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("expecting at most 1 positional argument for source, but found %d arguments", len(args))
	}
	if err := checkLogConfig(v); err != nil {
		return fmt.Errorf("error with log configuration: %w", err)
	}
	return nil
}

type InitS3ClientInput struct {
	Profile   string
	Partition string
	Region    string
	// AWS Client
	Endpoint           string
	InsecureSkipVerify bool
	RetryMaxAttempts   int
	UsePathStyle       bool
	// AWS Credentials
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	// Client Log Mode
	LogClientSigning   bool
	LogClientRetries   bool
	LogClientRequests  bool
	LogClientResponses bool
}

func InitS3Client(ctx context.Context, input *InitS3ClientInput) *s3.Client {
	clientLogMode := aws.ClientLogMode(0)
	if input.LogClientSigning {
		clientLogMode |= aws.LogSigning
	}
	if input.LogClientRetries {
		clientLogMode |= aws.LogRetries
	}
	if input.LogClientRequests {
		clientLogMode |= aws.LogRequest
	}
	if input.LogClientResponses {
		clientLogMode |= aws.LogResponse
	}

	c := aws.Config{
		ClientLogMode:    clientLogMode,
		RetryMaxAttempts: input.RetryMaxAttempts,
		Region:           input.Region,
		Logger:           log.NewClientLogger(os.Stdout),
	}

	if len(input.AccessKeyID) > 0 && len(input.SecretAccessKey) > 0 {
		c.Credentials = credentials.NewStaticCredentialsProvider(
			input.AccessKeyID,
			input.SecretAccessKey,
			input.SessionToken)
	} else {
		sharedConfig, err := config.LoadSharedConfigProfile(ctx, input.Profile)
		if err == nil {
			c.Credentials = credentials.NewStaticCredentialsProvider(
				sharedConfig.Credentials.AccessKeyID,
				sharedConfig.Credentials.SecretAccessKey,
				"")
		}
	}

	if input.InsecureSkipVerify {
		c.HTTPClient = &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: true,
				},
			},
		}
	}

	client := s3.NewFromConfig(c, func(o *s3.Options) {
		o.UsePathStyle = input.UsePathStyle
		if len(input.Endpoint) > 0 {
			o.BaseEndpoint = aws.String(input.Endpoint)
		}
	})

	return client
}

type InitFileSystemInput struct {
	Root                string
	Profile             string
	Partition           string
	DefaultRegion       string
	MaxDirectoryEntries int
	MaxPages            int
	BucketKeyEnabled    bool
	// AWS Client
	Endpoint           string
	InsecureSkipVerify bool
	RetryMaxAttempts   int
	UsePathStyle       bool
	PartSize           int
	// AWS Credentials
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	// Client Log Mode
	LogClientSigning   bool
	LogClientRetries   bool
	LogClientRequests  bool
	LogClientResponses bool
}

func InitFileSystem(ctx context.Context, input *InitFileSystemInput) fs.FileSystem {

	if !strings.HasPrefix(input.Root, "s3://") {
		return lfs.NewLocalFileSystem(strings.TrimPrefix(input.Root, "file://"))
	}

	clients := map[string]*s3.Client{}
	clients[input.DefaultRegion] = InitS3Client(ctx, &InitS3ClientInput{
		Profile:   input.Profile,
		Partition: input.Partition,
		Region:    input.DefaultRegion,
		// AWS Client
		Endpoint:           input.Endpoint,
		InsecureSkipVerify: input.InsecureSkipVerify,
		RetryMaxAttempts:   input.RetryMaxAttempts,
		UsePathStyle:       input.UsePathStyle,
		// AWS Credentials
		AccessKeyID:     input.AccessKeyID,
		SecretAccessKey: input.SecretAccessKey,
		SessionToken:    input.SessionToken,
		// Client Mode
		LogClientSigning:   input.LogClientSigning,
		LogClientRetries:   input.LogClientRetries,
		LogClientRequests:  input.LogClientRequests,
		LogClientResponses: input.LogClientResponses,
	})

	bucketCreationDates := map[string]time.Time{}
	bucketRegions := map[string]string{}

	listBucketsOutput, err := clients[input.DefaultRegion].ListBuckets(ctx, &s3.ListBucketsInput{})
	if err == nil {
		for _, b := range listBucketsOutput.Buckets {
			bucketCreationDates[aws.ToString(b.Name)] = aws.ToTime(b.CreationDate)
		}
		for bucketName := range bucketCreationDates {
			getBucketLocationOutput, getBucketLocationError := clients[input.DefaultRegion].GetBucketLocation(ctx, &s3.GetBucketLocationInput{
				Bucket: aws.String(bucketName),
			})
			if getBucketLocationError != nil {
				continue
			}
			bucketRegion := input.DefaultRegion
			if locationConstraint := string(getBucketLocationOutput.LocationConstraint); len(locationConstraint) > 0 {
				bucketRegion = locationConstraint
			} else {
				bucketRegion = "us-east-1"
			}
			bucketRegions[bucketName] = bucketRegion
			if _, ok := clients[bucketRegion]; !ok {
				clients[bucketRegion] = InitS3Client(ctx, &InitS3ClientInput{
					Profile:   input.Profile,
					Partition: input.Partition,
					Region:    bucketRegion,
					// AWS Client
					Endpoint:           input.Endpoint,
					InsecureSkipVerify: input.InsecureSkipVerify,
					RetryMaxAttempts:   input.RetryMaxAttempts,
					UsePathStyle:       input.UsePathStyle,
					// AWS Credentials
					AccessKeyID:     input.AccessKeyID,
					SecretAccessKey: input.SecretAccessKey,
					SessionToken:    input.SessionToken,
					// Client Mode
					LogClientSigning:   input.LogClientSigning,
					LogClientRetries:   input.LogClientRetries,
					LogClientRequests:  input.LogClientRequests,
					LogClientResponses: input.LogClientResponses,
				})
			}
		}
	}

	return s3fs.NewS3FileSystem(
		input.DefaultRegion,
		"",
		"",
		clients,
		bucketRegions,
		bucketCreationDates,
		input.MaxDirectoryEntries,
		input.MaxPages,
		input.BucketKeyEnabled,
		input.PartSize)
}

func initFileSystemFromViper(ctx context.Context, v *viper.Viper, root string) fs.FileSystem {
	region := v.GetString(flagAWSRegion)
	if len(region) == 0 {
		region = v.GetString(flagAWSDefaultRegion)
	}
	if len(region) == 0 {
		region = "us-east-1"
	}
	return InitFileSystem(ctx, &InitFileSystemInput{
		Root:                root,
		Profile:             v.GetString(flagAWSProfile),
		Partition:           v.GetString(flagAWSPartition),
		DefaultRegion:       region,
		MaxDirectoryEntries: v.GetInt(flagMaxDirectoryEntries),
		MaxPages:            v.GetInt(flagMaxPages),
		BucketKeyEnabled:    v.GetBool(flagBucketKeyEnabled),
		// AWS Client
		Endpoint:           v.GetString(flagAWSS3Endpoint),
		InsecureSkipVerify: v.GetBool(flagAWSInsecureSkipVerify),
		RetryMaxAttempts:   v.GetInt(flagAWSRetryMaxAttempts),
		UsePathStyle:       v.GetBool(flagAWSS3UsePathStyle),
		PartSize:           v.GetInt(flagPartSize),
		// AWS Credentials
		AccessKeyID:     v.GetString(flagAWSAccessKeyID),
		SecretAccessKey: v.GetString(flagAWSSecretAccessKey),
		SessionToken:    v.GetString(flagAWSSessionToken),
		// Client Mode
		LogClientSigning:   v.GetBool(flagLogClientSigning),
		LogClientRetries:   v.GetBool(flagLogClientRetries),
		LogClientRequests:  v.GetBool(flagLogClientRequests),
		LogClientResponses: v.GetBool(flagLogClientResponses),
	})
}

func initLogger(path string, perm string) (*log.SimpleLogger, error) {

	if path == os.DevNull {
		return log.NewSimpleLogger(io.Discard), nil
	}

	if path == "-" {
		return log.NewSimpleLogger(os.Stdout), nil
	}

	fileMode := os.FileMode(0600)

	if len(perm) > 0 {
		fm, err := strconv.ParseUint(perm, 8, 32)
		if err != nil {
			return nil, fmt.Errorf("error parsing file permissions for log file from %q", perm)
		}
		fileMode = os.FileMode(fm)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, fileMode)
	if err != nil {
		return nil, fmt.Errorf("error opening log file %q: %w", path, err)
	}

	return log.NewSimpleLogger(f), nil
}

// splitURI returns the scheme root and the name for the given URI.
// Local paths may be given with the "file://" scheme or without a scheme.
// S3 names start with the bucket, e.g., "s3://bucket/key" becomes "/bucket/key".
func splitURI(uri string) (string, string) {
	if strings.HasPrefix(uri, "s3://") {
		return "s3://", "/" + uri[len("s3://"):]
	}
	return "file://", strings.TrimPrefix(uri, "file://")
}

func initCopyOptions(v *viper.Viper) []fs.Option {
	options := []fs.Option{}
	if v.GetBool(flagReplaceExisting) {
		options = append(options, fs.OptionReplaceExisting)
	}
	if v.GetBool(flagCopyAttributes) {
		options = append(options, fs.OptionCopyAttributes)
	}
	if v.GetBool(flagNoFollowLinks) {
		options = append(options, fs.OptionNoFollowLinks)
	}
	return options
}

func main() {
	rootCommand := &cobra.Command{
		Use:                   `gocopy [flags]`,
		DisableFlagsInUseLine: true,
		Short: strings.Join([]string{
			"gocopy is a simple command line program for copying and moving files between two locations specified by URI.",
			"The locations may use different providers, e.g., a local file system and a S3 bucket.",
			"gocopy schemes returns the currently supported schemes.",
			"Local files are specified using the \"file://\" scheme or a path without a scheme.",
			"S3 files are specified using the \"s3://\" scheme.",
		}, "\n"),
	}

	schemesCommand := &cobra.Command{
		Use:                   `schemes`,
		DisableFlagsInUseLine: true,
		Short:                 "show the supported schemes",
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("file://\ns3://")
			return nil
		},
	}

	layoutsCommand := &cobra.Command{
		Use:                   `layouts`,
		DisableFlagsInUseLine: true,
		Short:                 "show supported timestamp layouts",
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]string, 0, len(ts.NamedLayouts))
			for name := range ts.NamedLayouts {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("%s: %s\n", name, ts.NamedLayouts[name])
			}
			return nil
		},
	}

	copyCommand := &cobra.Command{
		Use:                   "copy SOURCE DESTINATION",
		DisableFlagsInUseLine: true,
		Short:                 "copy",
		Long:                  "copy the file or directory at the source URI to the destination URI",
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			v, err := initViper(cmd)
			if err != nil {
				return fmt.Errorf("error initializing viper: %w", err)
			}

			if errConfig := checkCopyConfig(v, args); errConfig != nil {
				return errConfig
			}

			logger, err := initLogger(v.GetString(flagLogPath), v.GetString(flagLogPerm))
			if err != nil {
				return fmt.Errorf("error initializing logger: %w", err)
			}

			sourceRoot, sourceName := splitURI(args[0])
			destinationRoot, destinationName := splitURI(args[1])

			return fs.Copy(ctx, &fs.CopyInput{
				SourceName:            sourceName,
				SourceFileSystem:      initFileSystemFromViper(ctx, v, sourceRoot),
				DestinationName:       destinationName,
				DestinationFileSystem: initFileSystemFromViper(ctx, v, destinationRoot),
				Options:               initCopyOptions(v),
				Logger:                logger,
				MakeParents:           v.GetBool(flagParents),
			})
		},
	}
	initCopyCommandFlags(copyCommand.Flags())

	moveCommand := &cobra.Command{
		Use:                   "move SOURCE DESTINATION",
		DisableFlagsInUseLine: true,
		Short:                 "move",
		Long:                  "move the file or directory at the source URI to the destination URI",
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			v, err := initViper(cmd)
			if err != nil {
				return fmt.Errorf("error initializing viper: %w", err)
			}

			if errConfig := checkCopyConfig(v, args); errConfig != nil {
				return errConfig
			}

			logger, err := initLogger(v.GetString(flagLogPath), v.GetString(flagLogPerm))
			if err != nil {
				return fmt.Errorf("error initializing logger: %w", err)
			}

			options := initCopyOptions(v)
			if v.GetBool(flagAtomic) {
				options = append(options, fs.OptionAtomicMove)
			}

			sourceRoot, sourceName := splitURI(args[0])
			destinationRoot, destinationName := splitURI(args[1])

			return fs.Move(ctx, &fs.MoveInput{
				SourceName:            sourceName,
				SourceFileSystem:      initFileSystemFromViper(ctx, v, sourceRoot),
				DestinationName:       destinationName,
				DestinationFileSystem: initFileSystemFromViper(ctx, v, destinationRoot),
				Options:               options,
				Logger:                logger,
				MakeParents:           v.GetBool(flagParents),
			})
		},
	}
	initMoveCommandFlags(moveCommand.Flags())

	syncCommand := &cobra.Command{
		Use:                   "sync SOURCE DESTINATION",
		DisableFlagsInUseLine: true,
		Short:                 "sync",
		Long:                  "synchronize the directory at the source URI to the destination URI",
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			v, err := initViper(cmd)
			if err != nil {
				return fmt.Errorf("error initializing viper: %w", err)
			}

			if errConfig := checkSyncConfig(v, args); errConfig != nil {
				return errConfig
			}

			logger, err := initLogger(v.GetString(flagLogPath), v.GetString(flagLogPerm))
			if err != nil {
				return fmt.Errorf("error initializing logger: %w", err)
			}

			options := []fs.Option{}
			if v.GetBool(flagCopyAttributes) {
				options = append(options, fs.OptionCopyAttributes)
			}

			sourceRoot, sourceName := splitURI(args[0])
			destinationRoot, destinationName := splitURI(args[1])

			count, err := fs.Sync(ctx, &fs.SyncInput{
				Source:                sourceName,
				SourceFileSystem:      initFileSystemFromViper(ctx, v, sourceRoot),
				Destination:           destinationName,
				DestinationFileSystem: initFileSystemFromViper(ctx, v, destinationRoot),
				Options:               options,
				Parents:               v.GetBool(flagParents),
				CheckTimestamps:       v.GetBool(flagCheckTimestamps),
				Limit:                 v.GetInt(flagSyncLimit),
				Logger:                logger,
				MaxThreads:            v.GetInt(flagThreads),
				TimestampPrecision:    v.GetDuration(flagTimestampPrecision),
			})
			if err != nil {
				return err
			}

			return logger.Log("Done synchronizing", map[string]interface{}{
				"files": count,
			})
		},
	}
	initSyncCommandFlags(syncCommand.Flags())

	listCommand := &cobra.Command{
		Use:                   "list URI",
		DisableFlagsInUseLine: true,
		Short:                 "list",
		Long:                  "list the directory at the URI",
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			v, err := initViper(cmd)
			if err != nil {
				return fmt.Errorf("error initializing viper: %w", err)
			}

			if errConfig := checkListConfig(v, args); errConfig != nil {
				return errConfig
			}

			uri := "."
			if len(args) == 1 {
				uri = args[0]
			}

			layout := ts.ParseLayout(v.GetString(flagTimeLayout))
			location, err := ts.ParseLocation(v.GetString(flagTimeZone))
			if err != nil {
				return fmt.Errorf("error parsing time zone %q: %w", v.GetString(flagTimeZone), err)
			}

			root, name := splitURI(uri)
			fileSystem := initFileSystemFromViper(ctx, v, root)

			directoryEntries, err := fileSystem.ReadDir(ctx, name)
			if err != nil {
				return fmt.Errorf("error listing directory %q: %w", uri, err)
			}

			for _, directoryEntry := range directoryEntries {
				name := directoryEntry.Name()
				if directoryEntry.IsDir() {
					name = name + "/"
				}
				fmt.Printf("%s\t%d\t%s\n", layout.Format(directoryEntry.ModTime().In(location)), directoryEntry.Size(), name)
			}

			return nil
		},
	}
	initListCommandFlags(listCommand.Flags())

	versionCommand := &cobra.Command{
		Use:                   `version`,
		DisableFlagsInUseLine: true,
		Short:                 "show version",
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(GoCopyVersion)
			return nil
		},
	}

	rootCommand.AddCommand(schemesCommand, layoutsCommand, copyCommand, moveCommand, syncCommand, listCommand, versionCommand)

	if err := rootCommand.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "gocopy: "+err.Error())
		_, _ = fmt.Fprintln(os.Stderr, "Try 'gocopy --help' for more information.")
		os.Exit(1)
	}
}
