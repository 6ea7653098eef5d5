package help

const QuickstartYAML = `# lexa Quick Start

input_layouts:
  tree: "<root>/<register>/<model-folder>/las_word_<lang>.csv + summary_<lang>.json"
  observations: "one CSV: language,register,model,word,count,tokens[,upos]; model=human for the baseline"

modes:
  full: "Every valid word row (default)"
  compact: "Drops words the model never produced (c_M = 0)"

commands:
  build_tree: |
    lexa build --input-root csv_files --output-dir data

  build_observations: |
    lexa build --observations counts.csv --window 1000 --output-dir data

  build_with_config: |
    lexa build --config lexa.yaml --mode compact

  build_rounding: |
    lexa build --input-root csv_files --opm-places 2 --las-places 4 --ratio-places 4

  inspect_dataset: |
    lexa inspect en/news/gpt-4o --top 20
    lexa inspect data/en_news_gpt-4o.json --fields w,l,a,h,r --pos function

  list_builds: |
    lexa history

  build_details: |
    lexa history 3

outputs:
  - "data/<lang>_<register>_<model>.json (records sorted by |las| desc, then word)"
  - "data/index.json (one entry per dataset with mode, min_ai_count_for_impact and ratio_smooth, no timestamps)"
  - "lexa-builds.db (build ledger, skip with --no-ledger)"

record_fields:
  word: "Normalized word form"
  pos_class: "content or function"
  upos: "Universal POS tag, UNK when absent"
  opm_ai: "AI occurrences per million tokens (2 places)"
  opm_human: "Human occurrences per million tokens (2 places)"
  las: "P_ai(seen in K tokens) - P_human(seen in K tokens) (4 places, significant digits when it would round to 0)"
  ratio: "opm_ai / opm_human, the string \"undefined\" when opm_human is 0 (4 places)"
  ratio_smoothed: "(c_ai + s) / (c_human + s) (4 places)"
  lpr: "log2((c_ai + 1) / (c_human + 1)), 0 below min_ai_count_for_impact"
  rk_las: "1-based position in the file"
  rk_lpr: "1-based rank by lpr, highest first"

field_aliases:
  w: word
  p: pos_class
  u: upos
  a: opm_ai
  h: opm_human
  l: las
  r: ratio
  rs: ratio_smoothed
  lp: lpr
  kl: rk_las
  kp: rk_lpr

error_behavior:
  - "Malformed or missing inputs fail only their dataset; others are still written"
  - "Failed datasets are never written and are left out of index.json"
  - "Exit codes: 0=success, 1=some dataset failed, 2=bad flags, config or ledger"
`
